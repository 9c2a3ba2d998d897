package main

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/domain/camp"
	"github.com/healthcamp/dashboard/internal/domain/doctor"
	"github.com/healthcamp/dashboard/internal/domain/family"
	"github.com/healthcamp/dashboard/internal/domain/healthrecord"
	"github.com/healthcamp/dashboard/internal/domain/patient"
	"github.com/healthcamp/dashboard/internal/domain/report"
	"github.com/healthcamp/dashboard/internal/domain/scheme"
	"github.com/healthcamp/dashboard/internal/domain/user"
	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/middleware"
	"github.com/healthcamp/dashboard/internal/platform/tui"
	"github.com/healthcamp/dashboard/internal/platform/websocket"
)

// app holds every service of one running dashboard.
type app struct {
	hub        *websocket.Hub
	metrics    *middleware.Metrics
	prompts    *confirm.Registry
	expansions *browse.ExpansionRegistry

	activity *activity.Service
	doctors  *doctor.Service
	camps    *camp.Service
	users    *user.Service
	records  *healthrecord.Service
	schemes  *scheme.Service
	families *family.Service
	patients *patient.Service
	reports  *report.Service
}

// newApp seeds every collection. metrics may be nil.
func newApp(logger zerolog.Logger, metrics *middleware.Metrics, confirmTTL time.Duration) *app {
	a := &app{
		hub:        websocket.NewHub(logger),
		metrics:    metrics,
		prompts:    confirm.NewRegistry(confirmTTL, logger),
		expansions: browse.NewExpansionRegistry(),
	}

	var counter activity.MutationCounter
	if metrics != nil {
		counter = metrics
	}
	a.activity = activity.NewService(a.hub, counter, logger)

	a.doctors = doctor.NewService(a.activity, a.prompts)
	a.camps = camp.NewService(a.activity, a.prompts)
	a.users = user.NewService(a.activity, a.prompts)
	a.records = healthrecord.NewService(a.users, a.activity, a.prompts)
	a.schemes = scheme.NewService(a.activity, a.prompts, logger)
	a.families = family.NewService(a.activity)
	a.patients = patient.NewService()
	a.reports = report.NewService(report.Sources{
		Camps:    a.camps,
		Users:    a.users,
		Schemes:  a.schemes,
		Doctors:  a.doctors,
		Patients: a.patients,
		Activity: a.activity,
	})
	return a
}

// reset restores every collection to its seed.
func (a *app) reset() {
	a.activity.Reset()
	a.doctors.Reset()
	a.camps.Reset()
	a.users.Reset()
	a.records.Reset()
	a.schemes.Reset()
	a.families.Reset()
	a.patients.Reset()
}

// sources lists the collections the terminal browser can open.
func (a *app) sources() map[string]tui.Source {
	return map[string]tui.Source{
		"doctors": {
			Title:   "Doctors",
			View:    doctor.NewView(a.camps),
			Records: func() []browse.Record { return browse.Records(a.doctors.List()) },
		},
		"camps": {
			Title:   "Health Camps",
			View:    camp.NewView(a.doctors),
			Records: func() []browse.Record { return browse.Records(a.camps.List()) },
		},
		"users": {
			Title:   "Users",
			View:    user.NewView(a.records),
			Records: func() []browse.Record { return browse.Records(a.users.List()) },
		},
		"health-records": {
			Title:   "Health Records",
			View:    healthrecord.NewView(a.users, a.camps),
			Records: func() []browse.Record { return browse.Records(a.records.List()) },
		},
		"schemes": {
			Title:   "Scheme Applications",
			View:    scheme.View,
			Records: func() []browse.Record { return browse.Records(a.schemes.List("")) },
		},
		"families": {
			Title:   "Families",
			View:    family.NewView(a.families),
			Records: func() []browse.Record { return browse.Records(a.families.List(family.FilterAll)) },
		},
		"patients": {
			Title:   "My Patients",
			View:    patient.View,
			Records: func() []browse.Record { return browse.Records(a.patients.List()) },
		},
		"activities": {
			Title:   "Activity Log",
			View:    activity.View,
			Records: func() []browse.Record { return browse.Records(a.activity.Entries()) },
		},
	}
}

func (a *app) source(name string) (tui.Source, error) {
	sources := a.sources()
	src, ok := sources[name]
	if !ok {
		names := make([]string, 0, len(sources))
		for n := range sources {
			names = append(names, n)
		}
		sort.Strings(names)
		return tui.Source{}, fmt.Errorf("unknown entity %q, expected one of %v", name, names)
	}
	return src, nil
}

// seedSizes reports how many records each collection holds.
func (a *app) seedSizes() map[string]int {
	return map[string]int{
		"doctors":        len(a.doctors.List()),
		"camps":          len(a.camps.List()),
		"users":          len(a.users.List()),
		"health-records": len(a.records.List()),
		"schemes":        len(a.schemes.List("")),
		"families":       len(a.families.List(family.FilterAll)),
		"patients":       len(a.patients.List()),
		"activities":     len(a.activity.Entries()),
	}
}

func parseReportType(s string) (report.Type, error) {
	t := report.Type(s)
	if !slices.Contains(report.Types, t) {
		return "", fmt.Errorf("unknown report type %q, expected one of %v", s, report.Types)
	}
	return t, nil
}
