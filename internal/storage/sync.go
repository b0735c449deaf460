package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/normalize"
)

// AppState is the "appState" section of an export.
type AppState struct {
	RestDays      []string              `json:"restDays"`
	ActiveSession *models.ActiveSession `json:"activeSession,omitempty"`
}

// Document is the export file format.
type Document struct {
	Version       int                  `json:"version"`
	ExportDate    time.Time            `json:"exportDate"`
	Profile       models.Profile       `json:"profile"`
	Settings      models.Settings      `json:"settings"`
	History       models.History       `json:"history"`
	CardioHistory models.CardioHistory `json:"cardioHistory"`
	AppState      AppState             `json:"appState"`
	Meta          models.Meta          `json:"meta"`
}

// ImportError rejects a whole import file. No state is changed.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup file: %s: %v", e.Reason, e.Err)
	}
	return "invalid backup file: " + e.Reason
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewDocument(st *models.State, now time.Time) Document {
	return Document{
		Version:       StorageVersion,
		ExportDate:    now.UTC(),
		Profile:       st.Profile,
		Settings:      st.Settings,
		History:       st.History,
		CardioHistory: st.CardioHistory,
		AppState: AppState{
			RestDays:      st.RestDays,
			ActiveSession: st.Active,
		},
		Meta: st.Meta,
	}
}

// Export writes the state as indented JSON.
func Export(w io.Writer, st *models.State, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(st, now)); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// ExportFile writes the export to outputPath, or to a dated file in the
// current directory when it is empty.
func ExportFile(outputPath string, st *models.State, now time.Time) (string, error) {
	if outputPath == "" {
		outputPath = fmt.Sprintf("liftlog-backup-%s.json", now.Format("2006-01-02"))
	}
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Export(&buf, st, now); err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return outputPath, nil
}

// Imported is a decoded backup plus the records normalize dropped.
type Imported struct {
	State     *models.State
	Discarded []normalize.Discard
}

var requiredSections = []string{"profile", "settings", "history", "cardioHistory"}

// Import decodes a backup. Profile, settings, history and cardioHistory
// must be present and be objects, otherwise the file is rejected whole.
func Import(data []byte) (*Imported, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &ImportError{Reason: "not a JSON object", Err: err}
	}
	for _, section := range requiredSections {
		raw, ok := top[section]
		if !ok {
			return nil, &ImportError{Reason: fmt.Sprintf("missing %q", section)}
		}
		if !normalize.IsObject(raw) {
			return nil, &ImportError{Reason: fmt.Sprintf("%q is not an object", section)}
		}
	}

	st := models.NewState()
	if err := json.Unmarshal(top["profile"], &st.Profile); err != nil {
		return nil, &ImportError{Reason: "bad profile", Err: err}
	}
	if err := json.Unmarshal(top["settings"], &st.Settings); err != nil {
		return nil, &ImportError{Reason: "bad settings", Err: err}
	}

	hist, err := normalize.History(top["history"])
	if err != nil {
		return nil, &ImportError{Reason: "bad history", Err: err}
	}
	cardio, err := normalize.CardioHistory(top["cardioHistory"])
	if err != nil {
		return nil, &ImportError{Reason: "bad cardioHistory", Err: err}
	}
	st.History = hist.Records
	st.CardioHistory = cardio.Records
	discarded := append(hist.Discarded, cardio.Discarded...)

	if raw, ok := top["appState"]; ok && normalize.IsObject(raw) {
		var as AppState
		if err := json.Unmarshal(raw, &as); err != nil {
			return nil, &ImportError{Reason: "bad appState", Err: err}
		}
		days, dropped := normalize.DayKeys(as.RestDays)
		st.RestDays = days
		discarded = append(discarded, dropped...)
		st.Active = as.ActiveSession
	}
	if raw, ok := top["meta"]; ok && normalize.IsObject(raw) {
		if err := json.Unmarshal(raw, &st.Meta); err != nil {
			return nil, &ImportError{Reason: "bad meta", Err: err}
		}
	}

	st.EnsureMaps()
	return &Imported{State: st, Discarded: discarded}, nil
}

func ImportFile(filePath string) (*Imported, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("Reading file %s: %w", filePath, err)
	}
	return Import(data)
}
