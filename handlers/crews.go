package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCrewList returns all crews ordered by name.
func HandleCrewList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("crews", "1=1", "name", 0, 0, nil)
		if err != nil {
			log.Printf("crews: could not query crews: %v", err)
			return dataUnavailable(err)
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleCrewView returns one crew together with its members.
func HandleCrewView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		crew, err := app.FindRecordById("crews", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Crew not found", err)
		}

		members, err := app.FindRecordsByFilter(
			"crew_members",
			"crew = {:crew}",
			"name",
			0,
			0,
			map[string]any{"crew": crew.Id},
		)
		if err != nil {
			log.Printf("crews: could not query members of crew %s: %v", crew.Id, err)
			return dataUnavailable(err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"crew":    crew,
			"members": members,
		})
	}
}
