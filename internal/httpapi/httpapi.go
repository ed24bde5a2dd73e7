// Package httpapi is the outbound query surface from spec §6: a chi HTTP
// API exposing GET /api/v1/route (earliest-arrival) and
// GET /api/v1/trip-lookup/{id} over a routing engine. Grounded on the teacher's main.go (chi router,
// middleware.Logger/Recoverer/Timeout, rs/cors) and
// internal/handler/transport_handler.go (plain http.Error/json.NewEncoder
// response style), retargeted from the teacher's bespoke RaptorData/
// Raptor pair onto the core's engine.Engine/timetable.Timetable.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

// API serves the routing HTTP surface over any engine/timetable pair.
type API struct {
	Engine    engine.Engine
	Timetable *timetable.Timetable
}

// Router builds the chi router with the teacher's middleware stack and a
// permissive CORS policy suitable for a local development frontend.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Get("/", a.handleStatus)
	r.Get("/health", a.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/route", a.handleRoute)
		r.Get("/trip-lookup/{id}", a.handleTripLookup)
	})
	return r
}

func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "transitcore"})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// routeResponse is the JSON shape returned by /route: the alternating
// ride/walk parts of journey.Journey, flattened for a client that has no
// reason to know about the Go interface behind journey.Part.
type routeResponse struct {
	Found    bool        `json:"found"`
	Arrival  int64       `json:"arrival_time,omitempty"`
	Parts    []partView  `json:"parts,omitempty"`
}

type partView struct {
	Kind     string `json:"kind"` // "ride" or "walk"
	From     uint64 `json:"from_stop"`
	To       uint64 `json:"to_stop"`
	Depart   int64  `json:"depart_time"`
	Arrive   int64  `json:"arrive_time"`
	TripID   uint64 `json:"trip_id,omitempty"`
}

func (a *API) handleRoute(w http.ResponseWriter, r *http.Request) {
	src, err := parseStopID(r.URL.Query().Get("src"))
	if err != nil {
		http.Error(w, "invalid src", http.StatusBadRequest)
		return
	}
	dst, err := parseStopID(r.URL.Query().Get("dst"))
	if err != nil {
		http.Error(w, "invalid dst", http.StatusBadRequest)
		return
	}
	depart := timetable.Time(8 * 3600)
	if v := r.URL.Query().Get("depart"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid depart", http.StatusBadRequest)
			return
		}
		depart = timetable.Time(n)
	}

	j, ok := a.Engine.EarliestArrival(src, dst, depart)
	if !ok {
		writeJSON(w, http.StatusOK, routeResponse{Found: false})
		return
	}
	writeJSON(w, http.StatusOK, toRouteResponse(j))
}

func toRouteResponse(j journey.Journey) routeResponse {
	resp := routeResponse{Found: true, Arrival: int64(j.Arrival(0))}
	for _, p := range j.Parts {
		switch v := p.(type) {
		case journey.Ride:
			resp.Parts = append(resp.Parts, partView{
				Kind: "ride", From: v.FromStop(), To: v.ToStop(),
				Depart: int64(v.DepartTime()), Arrive: int64(v.ArriveTime()), TripID: v.TripID(),
			})
		case journey.Walk:
			resp.Parts = append(resp.Parts, partView{
				Kind: "walk", From: v.FromStop(), To: v.ToStop(),
				Depart: int64(v.DepartTime()), Arrive: int64(v.ArriveTime()),
			})
		}
	}
	return resp
}

func (a *API) handleTripLookup(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid trip id", http.StatusBadRequest)
		return
	}
	trip, ok := a.Timetable.Trips[id]
	if !ok {
		http.Error(w, "trip not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func parseStopID(s string) (timetable.StopID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return timetable.StopID(v), err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
