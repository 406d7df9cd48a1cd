// Package views computes read-only projections over a store snapshot.
// Every function here is pure: no side effects, no caching, and two calls
// with the same snapshot yield identical output. Projections never fail;
// dangling references degrade to the unresolved placeholder.
package views

import (
	"roadworks-backend/internal/database/models"
	"roadworks-backend/internal/store"
)

// StatusCounts is the per-status request tally plus the grand total
type StatusCounts struct {
	Total    int                          `json:"total"`
	ByStatus map[models.RequestStatus]int `json:"by_status"`
}

// CountByStatus tallies requests per lifecycle status
func CountByStatus(snap store.Snapshot) StatusCounts {
	counts := StatusCounts{
		Total:    len(snap.Requests),
		ByStatus: make(map[models.RequestStatus]int, len(models.AllStatuses())),
	}
	for _, status := range models.AllStatuses() {
		counts.ByStatus[status] = 0
	}
	for _, req := range snap.Requests {
		counts.ByStatus[req.Status]++
	}
	return counts
}

// ZoneCount is the request tally for one zone, with its resolved name
type ZoneCount struct {
	Zone  models.Zone `json:"zone"`
	Name  string      `json:"name"`
	Total int         `json:"total"`
}

// CountByZone tallies requests per zone across the closed zone set
func CountByZone(snap store.Snapshot) []ZoneCount {
	counts := make([]ZoneCount, 0, len(models.AllZones()))
	for _, zone := range models.AllZones() {
		count := ZoneCount{Zone: zone, Name: zonalName(snap, zone)}
		for _, req := range snap.Requests {
			if req.Zonal == zone {
				count.Total++
			}
		}
		counts = append(counts, count)
	}
	return counts
}

// ZoneRoster lists the users assigned to a zone, in collection order
func ZoneRoster(snap store.Snapshot, zone models.Zone) []models.User {
	roster := make([]models.User, 0)
	for _, user := range snap.Users {
		if user.Zonal == zone {
			roster = append(roster, user)
		}
	}
	return roster
}

// ZoneStats is the per-zone management bundle shown on the org page
type ZoneStats struct {
	Zone          models.Zone `json:"zone"`
	Name          string      `json:"name"`
	ManagerName   string      `json:"manager_name"`
	AssistantName string      `json:"assistant_name"`
	TeamSize      int         `json:"team_size"`
	OpenRequests  int         `json:"open_requests"`
	TotalRequests int         `json:"total_requests"`
}

// StatsForZone composes the zone bundle from the other lookups. The
// manager comes from the zone metadata reference when one is bound, else
// from the roster by role (older data predates the metadata reference);
// either way a dangling id resolves to the placeholder, never an error.
func StatsForZone(snap store.Snapshot, zone models.Zone) ZoneStats {
	stats := ZoneStats{
		Zone:          zone,
		Name:          zonalName(snap, zone),
		ManagerName:   store.UnresolvedName,
		AssistantName: store.UnresolvedName,
	}

	var meta *models.ZonalMetadata
	for i := range snap.Zonals {
		if snap.Zonals[i].ID == zone {
			meta = &snap.Zonals[i]
			break
		}
	}

	if meta != nil && meta.ManagerID != nil {
		stats.ManagerName = userName(snap, *meta.ManagerID)
	} else {
		for _, user := range snap.Users {
			if user.Zonal == zone && user.Role == models.RoleManager {
				stats.ManagerName = user.Name
				break
			}
		}
	}
	if meta != nil && meta.AssistantID != nil {
		stats.AssistantName = userName(snap, *meta.AssistantID)
	}

	for _, user := range snap.Users {
		if user.Zonal == zone {
			stats.TeamSize++
		}
	}
	for _, req := range snap.Requests {
		if req.Zonal != zone {
			continue
		}
		stats.TotalRequests++
		if req.Status == models.StatusOpen {
			stats.OpenRequests++
		}
	}
	return stats
}

// AllZoneStats computes the bundle for every zone in display order
func AllZoneStats(snap store.Snapshot) []ZoneStats {
	stats := make([]ZoneStats, 0, len(models.AllZones()))
	for _, zone := range models.AllZones() {
		stats = append(stats, StatsForZone(snap, zone))
	}
	return stats
}

func zonalName(snap store.Snapshot, zone models.Zone) string {
	for _, zonal := range snap.Zonals {
		if zonal.ID == zone {
			return zonal.Name
		}
	}
	return string(zone)
}

func userName(snap store.Snapshot, id string) string {
	for _, user := range snap.Users {
		if user.ID == id {
			return user.Name
		}
	}
	return store.UnresolvedName
}
