package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/launchbase/launchbase-backend/internal/repos"
	"github.com/launchbase/launchbase-backend/internal/types"
)

type recordingAnalysis struct {
	analyzed chan *types.MVPConnection
}

func (r *recordingAnalysis) Analyze(ctx context.Context, conn *types.MVPConnection) (*types.MVPAnalysis, error) {
	r.analyzed <- conn
	return &types.MVPAnalysis{}, nil
}

func (r *recordingAnalysis) Latest(ctx context.Context, userID uuid.UUID) (*types.MVPAnalysis, error) {
	return nil, nil
}

func newConnectionFixture(t *testing.T) (ConnectionService, *recordingAnalysis, *types.User) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)
	analysis := &recordingAnalysis{analyzed: make(chan *types.MVPConnection, 1)}
	svc := NewConnectionService(log, repos.NewMVPConnectionRepo(db, log), repos.NewMVPAnalysisRepo(db, log), analysis)
	return svc, analysis, user
}

func TestConnectManualTriggersAnalysis(t *testing.T) {
	svc, analysis, user := newConnectionFixture(t)

	conn, err := svc.Connect(context.Background(), user.ID, ConnectInput{
		ConnectionType:     "Manual",
		ProjectName:        "  Launch Tracker  ",
		ProjectDescription: "tracks launches",
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if conn.Status != types.ConnectionStatusConnected {
		t.Errorf("status=%q, want connected", conn.Status)
	}
	if conn.ConnectionType != types.ConnectionTypeManual {
		t.Errorf("connection_type=%q, want manual", conn.ConnectionType)
	}
	if conn.ProjectName != "Launch Tracker" {
		t.Errorf("project_name=%q, want trimmed original casing", conn.ProjectName)
	}

	select {
	case analyzed := <-analysis.analyzed:
		if analyzed.ID != conn.ID {
			t.Errorf("analysis ran for %s, want %s", analyzed.ID, conn.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("background analysis never started")
	}
}

func TestConnectValidation(t *testing.T) {
	svc, _, user := newConnectionFixture(t)
	cases := []struct {
		name  string
		input ConnectInput
	}{
		{"unknown_type", ConnectInput{ConnectionType: "carrier-pigeon"}},
		{"integration_without_platform", ConnectInput{ConnectionType: "integration", ConnectionURL: "https://example.com"}},
		{"integration_without_url", ConnectInput{ConnectionType: "integration", Platform: "Replit"}},
		{"url_without_scheme", ConnectInput{ConnectionType: "url", ConnectionURL: "example.com"}},
		{"url_bad_scheme", ConnectInput{ConnectionType: "url", ConnectionURL: "ftp://example.com"}},
		{"manual_without_name", ConnectInput{ConnectionType: "manual", ProjectDescription: "d"}},
		{"manual_without_description", ConnectInput{ConnectionType: "manual", ProjectName: "n"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Connect(context.Background(), user.ID, tc.input); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestListAndDisconnect(t *testing.T) {
	svc, analysis, user := newConnectionFixture(t)

	conn, err := svc.Connect(context.Background(), user.ID, ConnectInput{
		ConnectionType: "integration",
		Platform:       "Replit",
		ConnectionURL:  "https://example.com/app",
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	<-analysis.analyzed

	listed, err := svc.List(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != conn.ID {
		t.Fatalf("listed=%v", listed)
	}
	if listed[0].Platform != "replit" {
		t.Errorf("platform=%q, want normalized lowercase", listed[0].Platform)
	}

	if err := svc.Disconnect(context.Background(), user.ID, conn.ID); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	listed, err = svc.List(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("List after disconnect: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("listed=%v, want empty", listed)
	}

	if err := svc.Disconnect(context.Background(), user.ID, conn.ID); err != ErrNotFound {
		t.Errorf("second disconnect err=%v, want ErrNotFound", err)
	}
}

func TestDisconnectForeignConnection(t *testing.T) {
	svc, analysis, user := newConnectionFixture(t)

	conn, err := svc.Connect(context.Background(), user.ID, ConnectInput{
		ConnectionType: "url",
		ConnectionURL:  "https://example.com/app",
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	<-analysis.analyzed

	if err := svc.Disconnect(context.Background(), uuid.New(), conn.ID); err != ErrNotFound {
		t.Errorf("err=%v, want ErrNotFound for other user", err)
	}
}
