package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/soar/ControllerMapDB/internal/db"
	"github.com/soar/ControllerMapDB/internal/gamepad"
)

type entrySummary struct {
	GUID     string   `json:"guid"`
	Name     string   `json:"name"`
	Platform string   `json:"platform,omitempty"`
	Vendor   string   `json:"vendor"`
	Product  string   `json:"product"`
	Axes     int      `json:"axes"`
	Buttons  int      `json:"buttons"`
	Hats     int      `json:"hats"`
	Issues   []string `json:"issues,omitempty"`
	Source   string   `json:"source"`
	Line     int      `json:"line"`
}

type axisBindingView struct {
	Index    int32  `json:"index"`
	Target   string `json:"target"`
	Input    string `json:"input"`
	Output   string `json:"output"`
	Inverted bool   `json:"inverted,omitempty"`
}

type buttonBindingView struct {
	Index  int32  `json:"index"`
	Target string `json:"target"`
}

type hatBindingView struct {
	Hat       int32  `json:"hat"`
	Direction uint16 `json:"direction"`
	Target    string `json:"target"`
}

type entryDetail struct {
	entrySummary
	AxisBindings   []axisBindingView   `json:"axisBindings"`
	ButtonBindings []buttonBindingView `json:"buttonBindings"`
	HatBindings    []hatBindingView    `json:"hatBindings"`
}

func summarize(e *db.Entry) entrySummary {
	s := entrySummary{
		GUID:     e.GUID.String(),
		Name:     e.Name,
		Platform: e.Platform,
		Vendor:   fmt.Sprintf("%04x", e.GUID.Vendor()),
		Product:  fmt.Sprintf("%04x", e.GUID.Product()),
		Axes:     len(e.Profile.Axes),
		Buttons:  len(e.Profile.Buttons),
		Hats:     len(e.Profile.Hats),
		Source:   e.Source,
		Line:     e.Line,
	}
	for _, issue := range e.Issues {
		s.Issues = append(s.Issues, issue.Error())
	}
	return s
}

func detail(e *db.Entry) entryDetail {
	d := entryDetail{entrySummary: summarize(e)}
	for _, b := range e.Profile.Axes {
		d.AxisBindings = append(d.AxisBindings, axisBindingView{
			Index:    b.Index,
			Target:   b.Target.String(),
			Input:    b.Input.String(),
			Output:   b.Output.String(),
			Inverted: b.Inverted,
		})
	}
	for _, b := range e.Profile.Buttons {
		d.ButtonBindings = append(d.ButtonBindings, buttonBindingView{
			Index:  b.Index,
			Target: b.Target.String(),
		})
	}
	for _, b := range e.Profile.Hats {
		d.HatBindings = append(d.HatBindings, hatBindingView{
			Hat:       b.Hat,
			Direction: b.Direction,
			Target:    b.Target.String(),
		})
	}
	return d
}

func (s *Server) handleListMappings(w http.ResponseWriter, r *http.Request) {
	entries := s.database.Entries()
	out := make([]entrySummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, summarize(e))
	}
	writeJSON(w, out)
}

func (s *Server) handleGetMapping(w http.ResponseWriter, r *http.Request) {
	entry, err := s.database.LookupText(r.PathValue("guid"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if entry == nil {
		http.Error(w, "no mapping for GUID", http.StatusNotFound)
		return
	}
	writeJSON(w, detail(entry))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var state gamepad.GamepadState
	if s.source != nil {
		state = s.source.CurrentState()
	}
	writeJSON(w, state)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
