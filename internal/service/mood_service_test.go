package service

import (
	"errors"
	"testing"
	"time"

	"github.com/risewell/internal/db"
)

func TestMoodServiceSetAndGetToday(t *testing.T) {
	svc := NewMoodService(setupServiceTestDB(t))
	today := time.Date(2024, 5, 1, 21, 0, 0, 0, time.Local)

	if err := svc.SetToday(1, today, "开心", "今天很顺利"); err != nil {
		t.Fatalf("SetToday returned error: %v", err)
	}

	record, err := svc.GetToday(1, today)
	if err != nil {
		t.Fatalf("GetToday returned error: %v", err)
	}
	if record == nil {
		t.Fatal("expected record for today")
	}
	if record.Mood != "开心" || record.Sentence != "今天很顺利" {
		t.Fatalf("unexpected record: mood=%s sentence=%s", record.Mood, record.Sentence)
	}
}

func TestMoodServiceUpsertKeepsSingleRowPerDay(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewMoodService(gdb)
	today := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)

	if err := svc.SetToday(1, today, "平静", "第一版"); err != nil {
		t.Fatalf("SetToday returned error: %v", err)
	}
	// 同一天重复提交覆盖旧值
	if err := svc.SetToday(1, today.Add(10*time.Hour), "开心", "第二版"); err != nil {
		t.Fatalf("SetToday upsert returned error: %v", err)
	}

	var count int64
	if err := gdb.Model(&db.MoodRecord{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 row per day, got %d", count)
	}

	record, err := svc.GetToday(1, today)
	if err != nil {
		t.Fatalf("GetToday returned error: %v", err)
	}
	if record == nil || record.Mood != "开心" || record.Sentence != "第二版" {
		t.Fatalf("expected latest values, got %+v", record)
	}
}

func TestMoodServiceGetTodayEmptyDefault(t *testing.T) {
	svc := NewMoodService(setupServiceTestDB(t))

	record, err := svc.GetToday(1, time.Now())
	if err != nil {
		t.Fatalf("GetToday returned error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record for empty day, got %+v", record)
	}
}

func TestMoodServiceHistoryOrderedByDateDesc(t *testing.T) {
	svc := NewMoodService(setupServiceTestDB(t))
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	for _, offset := range []int{0, 2, 1} {
		date := base.AddDate(0, 0, offset)
		if err := svc.SetToday(1, date, "平静", date.Format("2006-01-02")); err != nil {
			t.Fatalf("SetToday returned error: %v", err)
		}
	}

	records, err := svc.History(1)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].EntryDate.After(records[i-1].EntryDate) {
			t.Fatalf("expected date descending order, got %v then %v", records[i-1].EntryDate, records[i].EntryDate)
		}
	}
}

func TestMoodServiceValidationAndIsolation(t *testing.T) {
	svc := NewMoodService(setupServiceTestDB(t))
	today := time.Now()

	if err := svc.SetToday(1, today, "开心", "  "); !errors.Is(err, ErrEmptySentence) {
		t.Fatalf("expected ErrEmptySentence, got %v", err)
	}

	if err := svc.SetToday(1, today, "开心", "只属于用户1"); err != nil {
		t.Fatalf("SetToday returned error: %v", err)
	}

	record, err := svc.GetToday(2, today)
	if err != nil {
		t.Fatalf("GetToday returned error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected isolation between users, got %+v", record)
	}

	history, err := svc.History(2)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history for other user, got %d records", len(history))
	}
}
