package jettyboot

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/core"
)

type fakeStore struct {
	rec     Record
	loadErr error
	saveErr error
	saves   []Record
}

func (f *fakeStore) Load() (Record, error) {
	return f.rec, f.loadErr
}

func (f *fakeStore) Save(r Record) error {
	f.saves = append(f.saves, r)
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rec = r
	return nil
}

func newTestSession(store RecordStore) *Session {
	return NewSession(config.DefaultJettyConfig(), store, rand.NewSource(1), nil)
}

func typed(s string) core.InputFrame {
	in := core.NewInputFrame()
	in.Type([]rune(s)...)
	return in
}

func action(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestSessionStartsOnNameEntry(t *testing.T) {
	s := newTestSession(&fakeStore{rec: Record{Name: "Zed", HighScore: 12}})

	if s.Mode() != ModeNameEntry {
		t.Errorf("mode = %v, want name entry", s.Mode())
	}
	if s.Draft() != "Zed" {
		t.Errorf("draft = %q, want stored name", s.Draft())
	}
	if s.Record().HighScore != 12 {
		t.Errorf("high score = %d, want 12", s.Record().HighScore)
	}
}

func TestSessionEmptyStore(t *testing.T) {
	s := newTestSession(&fakeStore{})

	if rec := s.Record(); rec.Name != "" || rec.HighScore != 0 {
		t.Errorf("record = %+v, want zero", rec)
	}
	if s.Draft() != "" {
		t.Errorf("draft = %q, want empty", s.Draft())
	}
}

func TestSessionLoadErrorIsNotFatal(t *testing.T) {
	store := &fakeStore{rec: Record{Name: "Zed"}, loadErr: errors.New("bad score line")}
	s := newTestSession(store)

	if rec := s.Record(); rec.Name != "Zed" || rec.HighScore != 0 {
		t.Errorf("record = %+v, want name kept and score zero", rec)
	}
	s.Step(action(core.ActionConfirm))
	if s.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", s.Mode())
	}
}

func TestSessionNilStore(t *testing.T) {
	s := newTestSession(nil)
	s.Step(typed("solo"))
	s.Step(action(core.ActionConfirm))

	if s.Mode() != ModeMenu || s.Record().Name != "solo" {
		t.Errorf("mode %v record %+v", s.Mode(), s.Record())
	}
}

func TestSessionNameEntry(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store)

	s.Step(typed("Ada"))
	s.Step(action(core.ActionBackspace))
	s.Step(typed("m p"))
	if s.Draft() != "Adm p" {
		t.Fatalf("draft = %q, want %q", s.Draft(), "Adm p")
	}

	s.Step(action(core.ActionConfirm))
	if s.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", s.Mode())
	}
	if len(store.saves) != 1 || store.saves[0].Name != "Adm p" {
		t.Errorf("saves = %+v, want one save of the name", store.saves)
	}
}

func TestSessionNameEntryLimits(t *testing.T) {
	s := newTestSession(&fakeStore{})
	limit := config.DefaultJettyConfig().Gameplay.MaxNameLength

	s.Step(typed(strings.Repeat("x", limit+5)))
	if n := len([]rune(s.Draft())); n != limit {
		t.Errorf("draft length = %d, want %d", n, limit)
	}

	s.Step(typed("\x07\t"))
	if n := len([]rune(s.Draft())); n != limit {
		t.Errorf("control characters should be ignored, length %d", n)
	}

	for i := 0; i < limit+3; i++ {
		s.Step(action(core.ActionBackspace))
	}
	if s.Draft() != "" {
		t.Errorf("draft = %q, want empty", s.Draft())
	}
}

func TestSessionStoredNameTruncated(t *testing.T) {
	s := newTestSession(&fakeStore{rec: Record{Name: strings.Repeat("n", 30)}})
	if n := len([]rune(s.Draft())); n != 16 {
		t.Errorf("draft length = %d, want 16", n)
	}
}

func TestSessionMenu(t *testing.T) {
	s := newTestSession(&fakeStore{rec: Record{Name: "Zed", HighScore: 7}})
	s.Step(action(core.ActionConfirm))

	rows := s.MenuRows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].Name != "Bosco" || rows[0].Score != 999999 || rows[0].Player {
		t.Errorf("first row = %+v", rows[0])
	}
	last := rows[3]
	if !last.Player || last.Rank != 4 || last.Name != "Zed" || last.Score != 7 {
		t.Errorf("player row = %+v", last)
	}

	s.Step(core.NewInputFrame())
	if s.Mode() != ModeMenu {
		t.Fatal("menu should wait for input")
	}
	s.Step(action(core.ActionClimb))
	if s.Mode() != ModeGame {
		t.Errorf("mode = %v, want game", s.Mode())
	}
}

func TestSessionPersistsHighScore(t *testing.T) {
	store := &fakeStore{rec: Record{Name: "Zed", HighScore: 0}}
	s := newTestSession(store)
	s.Step(action(core.ActionConfirm))
	s.Step(action(core.ActionClimb))

	g := s.Game()
	cfg := g.Config()
	g.phase = PhaseNormal
	g.tracker.Offset = cfg.FirstObstacleOffset() - 1

	s.Step(core.NewInputFrame())
	if g.State().Score != 1 {
		t.Fatalf("score = %d, want 1", g.State().Score)
	}
	if s.Record().HighScore != 1 {
		t.Errorf("high score = %d, want 1", s.Record().HighScore)
	}
	last := store.saves[len(store.saves)-1]
	if last.Name != "Zed" || last.HighScore != 1 {
		t.Errorf("last save = %+v", last)
	}
}

func TestSessionKeepsHigherRecord(t *testing.T) {
	store := &fakeStore{rec: Record{Name: "Zed", HighScore: 50}}
	s := newTestSession(store)
	s.Step(action(core.ActionConfirm))
	s.Step(action(core.ActionClimb))
	saves := len(store.saves)

	g := s.Game()
	g.phase = PhaseNormal
	g.tracker.Offset = g.Config().FirstObstacleOffset() - 1
	s.Step(core.NewInputFrame())

	if s.Record().HighScore != 50 || len(store.saves) != saves {
		t.Errorf("lower score should not be saved: %+v, %d saves", s.Record(), len(store.saves))
	}
}

func TestSessionSaveErrorIsNotFatal(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	s := newTestSession(store)
	s.Step(typed("Ada"))
	s.Step(action(core.ActionConfirm))

	if s.Mode() != ModeMenu || s.Record().Name != "Ada" {
		t.Errorf("mode %v record %+v", s.Mode(), s.Record())
	}
}

func TestSessionGameOverReturnsToMenu(t *testing.T) {
	s := newTestSession(&fakeStore{})
	s.Step(action(core.ActionConfirm))
	s.Step(action(core.ActionClimb))

	empty := core.NewInputFrame()
	for i := 0; i < 5000 && s.Game().Phase() != PhaseGameOver; i++ {
		s.Step(empty)
	}
	if s.Game().Phase() != PhaseGameOver {
		t.Fatal("game never ended")
	}

	s.Step(empty)
	if s.Mode() != ModeGame {
		t.Fatal("game over screen should wait for input")
	}
	s.Step(action(core.ActionClimb))
	if s.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", s.Mode())
	}

	// A new game starts fresh
	s.Step(action(core.ActionConfirm))
	if s.Mode() != ModeGame || s.Game().State().Lives != 3 || s.Game().Phase() != PhaseInit {
		t.Errorf("new game state %v %+v", s.Game().Phase(), s.Game().State())
	}
}

func TestSessionQuit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session)
	}{
		{"name entry", func(s *Session) {}},
		{"menu", func(s *Session) { s.Step(action(core.ActionConfirm)) }},
		{"game", func(s *Session) {
			s.Step(action(core.ActionConfirm))
			s.Step(action(core.ActionClimb))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(&fakeStore{})
			tt.setup(s)
			if s.Quit() {
				t.Fatal("quit before asking")
			}
			s.Step(action(core.ActionQuit))
			if !s.Quit() {
				t.Error("expected quit")
			}
		})
	}
}

func TestSessionRender(t *testing.T) {
	s := newTestSession(&fakeStore{rec: Record{Name: "Zed", HighScore: 7}})
	dst := core.NewScreen(80, 24)

	s.Render(dst)
	out := dst.String()
	for _, want := range []string{"JETTY BOOT", "Choose a name:", "[Zed"} {
		if !strings.Contains(out, want) {
			t.Errorf("name entry screen missing %q:\n%s", want, out)
		}
	}

	s.Step(action(core.ActionConfirm))
	s.Render(dst)
	out = dst.String()
	for _, want := range []string{"High Scores", "Bosco", "Zed", "INSERT 5 CREDITS"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu screen missing %q:\n%s", want, out)
		}
	}

	s.Step(action(core.ActionClimb))
	s.Render(dst)
	out = dst.String()
	for _, want := range []string{"HIGH SCORE", "LEVEL 1", "LVL 1", string(BootChar), string(LifeChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("game screen missing %q:\n%s", want, out)
		}
	}
}
