package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vkotov/stride/internal/app"
	"github.com/vkotov/stride/internal/models"
)

// Context is passed to every command by kong.
type Context struct {
	App        *app.Store
	ConfigPath string
	Debug      bool
}

// open initializes the app store, surfacing only genuine
// initialization faults (storage problems degrade to defaults).
func (c *Context) open() (*models.Document, error) {
	if err := c.App.Open(); err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return c.App.GetState(), nil
}

// matchLifecycle matches an entity by exact title or id prefix.
func matchID(id, title, query string) bool {
	return title == query || (len(query) >= 4 && strings.HasPrefix(id, query))
}

func findGoal(d *models.Document, query string) (*models.Goal, error) {
	for i := range d.Goals {
		if matchID(d.Goals[i].ID, d.Goals[i].Title, query) {
			return &d.Goals[i], nil
		}
	}
	return nil, fmt.Errorf("goal %q not found", query)
}

func findHabit(d *models.Document, query string) (*models.Habit, error) {
	for i := range d.Habits {
		if matchID(d.Habits[i].ID, d.Habits[i].Title, query) {
			return &d.Habits[i], nil
		}
	}
	return nil, fmt.Errorf("habit %q not found", query)
}

func findWish(d *models.Document, query string) (*models.Wish, error) {
	for i := range d.Wishes {
		if matchID(d.Wishes[i].ID, d.Wishes[i].Title, query) {
			return &d.Wishes[i], nil
		}
	}
	return nil, fmt.Errorf("wish %q not found", query)
}

func findArchived(d *models.Document, query string) (*models.ArchivedItem, error) {
	for i := range d.CompletedItems {
		item := &d.CompletedItems[i]
		if l := item.Entity(); l != nil && matchID(l.ID, item.Title(), query) {
			return item, nil
		}
	}
	return nil, fmt.Errorf("archived item %q not found", query)
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err == nil && num >= 0 && num <= 6 {
			weekdays = append(weekdays, time.Weekday(num))
		} else {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
	}

	return weekdays, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
