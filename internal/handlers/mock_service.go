package handlers

import (
	"context"
	"net/http"
	"time"

	"planetaryhours"
	"planetaryhours/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockHours struct {
	current    planetaryhours.PlanetaryHour
	currentErr error
	snapshot   planetaryhours.PlanetaryHour
	snapErr    error

	lastOffset   int
	currentCalls int
}

func (m *mockHours) Current(ctx context.Context, hourOffset int) (planetaryhours.PlanetaryHour, error) {
	m.currentCalls++
	m.lastOffset = hourOffset
	return m.current, m.currentErr
}
func (m *mockHours) Snapshot(ctx context.Context) (planetaryhours.PlanetaryHour, error) {
	return m.snapshot, m.snapErr
}

type mockLocation struct {
	loc      planetaryhours.ObserverLocation
	getErr   error
	setErr   error
	clearErr error
	presets  []service.Preset
	applyErr error

	lastSet    service.LocationParams
	lastPreset string
	clearCalls int
}

func (m *mockLocation) Set(ctx context.Context, p service.LocationParams) (planetaryhours.ObserverLocation, error) {
	m.lastSet = p
	if m.setErr != nil {
		return planetaryhours.ObserverLocation{}, m.setErr
	}
	return planetaryhours.ObserverLocation{ID: 1, Latitude: p.Latitude, Longitude: p.Longitude, Label: p.Label}, nil
}
func (m *mockLocation) Get(ctx context.Context) (planetaryhours.ObserverLocation, error) {
	return m.loc, m.getErr
}
func (m *mockLocation) Clear(ctx context.Context) error {
	m.clearCalls++
	return m.clearErr
}
func (m *mockLocation) Presets() []service.Preset {
	return m.presets
}
func (m *mockLocation) ApplyPreset(ctx context.Context, name string) (planetaryhours.ObserverLocation, error) {
	m.lastPreset = name
	if m.applyErr != nil {
		return planetaryhours.ObserverLocation{}, m.applyErr
	}
	return m.loc, nil
}

type mockEventLog struct {
	resp     []planetaryhours.ComputationEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]planetaryhours.ComputationEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
