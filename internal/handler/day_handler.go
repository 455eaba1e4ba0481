package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/risewell/internal/service"
)

// ShowMorning 渲染今日晨间视图：例行步骤与当天的感恩条目
func (a *API) ShowMorning(c *gin.Context) {
	userID := currentUserID(c)
	now := time.Now().In(time.Local)

	steps, err := a.routines.ListSteps(userID, service.PeriodMorning)
	if err != nil {
		a.renderApology(c, http.StatusInternalServerError, "加载晨间步骤失败")
		return
	}

	entries, err := a.gratitude.ListForDate(userID, now)
	if err != nil {
		a.renderApology(c, http.StatusInternalServerError, "加载感恩条目失败")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":     "晨间例行",
		"username":  sessionUsername(c),
		"date":      now.Format(displayDateFormat),
		"steps":     steps,
		"gratitude": entries,
	})
}

// ShowEvening 渲染今日晚间视图：例行步骤与当天的心情记录
// 当天还没有记录时展示空值而不是报错
func (a *API) ShowEvening(c *gin.Context) {
	userID := currentUserID(c)
	now := time.Now().In(time.Local)

	steps, err := a.routines.ListSteps(userID, service.PeriodEvening)
	if err != nil {
		a.renderApology(c, http.StatusInternalServerError, "加载晚间步骤失败")
		return
	}

	record, err := a.moods.GetToday(userID, now)
	if err != nil {
		a.renderApology(c, http.StatusInternalServerError, "加载心情记录失败")
		return
	}

	mood, sentence := "", ""
	if record != nil {
		mood, sentence = record.Mood, record.Sentence
	}

	c.HTML(http.StatusOK, "evening.html", gin.H{
		"title":    "晚间例行",
		"username": sessionUsername(c),
		"date":     now.Format(displayDateFormat),
		"steps":    steps,
		"mood":     mood,
		"sentence": sentence,
	})
}

// AddStep 根据提交的表单字段决定时段并追加步骤
func (a *API) AddStep(c *gin.Context) {
	userID := currentUserID(c)

	if name := c.PostForm("new_step"); strings.TrimSpace(name) != "" {
		if err := a.routines.AddStep(userID, service.PeriodMorning, name); err != nil {
			a.handleRoutineError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	if name := c.PostForm("new_evening_step"); strings.TrimSpace(name) != "" {
		if err := a.routines.AddStep(userID, service.PeriodEvening, name); err != nil {
			a.handleRoutineError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/evening")
		return
	}

	a.renderApology(c, http.StatusBadRequest, "请填写步骤名称")
}

// AddGratitude 追加一条当天的感恩条目
func (a *API) AddGratitude(c *gin.Context) {
	err := a.gratitude.AddEntry(currentUserID(c), time.Now().In(time.Local), c.PostForm("gratitude_entry"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyEntry):
			a.renderApology(c, http.StatusBadRequest, "请填写感恩内容")
		case errors.Is(err, service.ErrEntryTooLong):
			a.renderApology(c, http.StatusBadRequest, "感恩内容过长")
		default:
			a.renderApology(c, http.StatusInternalServerError, "保存感恩条目失败")
		}
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// SetDailyMood 幂等写入当天的心情与一句话
func (a *API) SetDailyMood(c *gin.Context) {
	err := a.moods.SetToday(
		currentUserID(c),
		time.Now().In(time.Local),
		c.PostForm("mood_selection"),
		c.PostForm("sentence"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptySentence):
			a.renderApology(c, http.StatusBadRequest, "请填写今日一句话")
		case errors.Is(err, service.ErrSentenceTooLong):
			a.renderApology(c, http.StatusBadRequest, "今日一句话过长")
		default:
			a.renderApology(c, http.StatusInternalServerError, "保存心情记录失败")
		}
		return
	}
	c.Redirect(http.StatusFound, "/evening")
}

// DeleteItem 按表单字段删除感恩条目或早晚步骤
// 无匹配记录时同样重定向，不视为错误
func (a *API) DeleteItem(c *gin.Context) {
	userID := currentUserID(c)
	today := time.Now().In(time.Local)

	if text := c.PostForm("delete_gratitude"); text != "" {
		if err := a.gratitude.DeleteEntry(userID, today, text); err != nil {
			a.renderApology(c, http.StatusInternalServerError, "删除感恩条目失败")
			return
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	if name := c.PostForm("delete_step"); name != "" {
		if err := a.routines.DeleteStep(userID, service.PeriodMorning, name); err != nil {
			a.renderApology(c, http.StatusInternalServerError, "删除步骤失败")
			return
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	if name := c.PostForm("delete_evening_step"); name != "" {
		if err := a.routines.DeleteStep(userID, service.PeriodEvening, name); err != nil {
			a.renderApology(c, http.StatusInternalServerError, "删除步骤失败")
			return
		}
		c.Redirect(http.StatusFound, "/evening")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowDailyHistory 列出全部心情记录，按日期倒序
func (a *API) ShowDailyHistory(c *gin.Context) {
	records, err := a.moods.History(currentUserID(c))
	if err != nil {
		a.renderApology(c, http.StatusInternalServerError, "加载心情历史失败")
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		items = append(items, gin.H{
			"date":     record.EntryDate.Format(dateFormat),
			"mood":     record.Mood,
			"sentence": renderMarkdown(record.Sentence),
		})
	}

	c.HTML(http.StatusOK, "daily_history.html", gin.H{
		"title":    "心情历史",
		"username": sessionUsername(c),
		"entries":  items,
	})
}

// ShowGratitudeHistory 列出全部感恩条目，按日期倒序
func (a *API) ShowGratitudeHistory(c *gin.Context) {
	entries, err := a.gratitude.ListAll(currentUserID(c))
	if err != nil {
		a.renderApology(c, http.StatusInternalServerError, "加载感恩历史失败")
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		items = append(items, gin.H{
			"date": entry.EntryDate.Format(dateFormat),
			"text": renderMarkdown(entry.Text),
		})
	}

	c.HTML(http.StatusOK, "gratitude_history.html", gin.H{
		"title":    "感恩历史",
		"username": sessionUsername(c),
		"entries":  items,
	})
}

func (a *API) handleRoutineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyStepName):
		a.renderApology(c, http.StatusBadRequest, "请填写步骤名称")
	case errors.Is(err, service.ErrStepNameTooLong):
		a.renderApology(c, http.StatusBadRequest, "步骤名称过长")
	case errors.Is(err, service.ErrInvalidPeriod):
		a.renderApology(c, http.StatusBadRequest, "无效的时段")
	default:
		a.renderApology(c, http.StatusInternalServerError, "保存步骤失败")
	}
}
