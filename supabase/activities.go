package supabase

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"owusu1946/portfolio-chat/types"
)

const activitiesTable = "turn_activities"

// TrackTurnActivity stores one answered turn. No message text is written.
func TrackTurnActivity(client *supabase.Client, activity types.TurnActivity) error {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	_, _, err := client.From(activitiesTable).Insert(activity, false, "", "", "").Execute()
	if err != nil {
		return errors.Wrap(err, "failed to track turn activity")
	}
	return nil
}

// RecentActivities returns turns recorded since the given time, newest
// first.
func RecentActivities(client *supabase.Client, since time.Time, limit int) ([]types.TurnActivity, error) {
	resp, _, err := client.From(activitiesTable).
		Select("*", "", false).
		Gte("created_at", since.UTC().Format(time.RFC3339)).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch turn activities")
	}

	var activities []types.TurnActivity
	if err := json.Unmarshal(resp, &activities); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal turn activities")
	}
	return activities, nil
}

// ToolUsage counts turns per tool name. Turns answered without a tool are
// counted under "none".
func ToolUsage(activities []types.TurnActivity) map[string]int {
	usage := make(map[string]int)
	for _, a := range activities {
		name := a.ToolName
		if name == "" {
			name = "none"
		}
		usage[name]++
	}
	return usage
}
