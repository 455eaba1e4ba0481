package handler

import (
	"github.com/risewell/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	accounts  *service.AccountService
	routines  *service.RoutineService
	gratitude *service.GratitudeService
	moods     *service.MoodService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		accounts:  service.NewAccountService(gdb),
		routines:  service.NewRoutineService(gdb),
		gratitude: service.NewGratitudeService(gdb),
		moods:     service.NewMoodService(gdb),
	}
}
