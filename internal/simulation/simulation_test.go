package simulation

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"github.com/RenzoDavila27/Truco-AI/internal/player"
	"golang.org/x/text/language"
)

// stubbornBot always answers with the same action, legal or not.
type stubbornBot struct{ a engine.Action }

func (b stubbornBot) Name() string { return "stubborn" }

func (b stubbornBot) ChooseAction(engine.View, engine.Mask) (engine.Action, error) {
	return b.a, nil
}

func randomSeats(seed int64) [2]player.Player {
	rng := rand.New(rand.NewSource(seed))
	return [2]player.Player{player.NewRandomBot(rng), player.NewRationalBot(rng)}
}

func TestPlayMatch(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := engine.NewGame(engine.WithRand(rand.New(rand.NewSource(seed))))
		res, err := PlayMatch(context.Background(), g, randomSeats(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if max(res.Points[0], res.Points[1]) < engine.MatchTarget {
			t.Fatalf("seed %d: match stopped at %v", seed, res.Points)
		}
		if res.HandsWon[0]+res.HandsWon[1] != res.HandsPlayed || res.HandsPlayed == 0 {
			t.Fatalf("seed %d: hands %d won %v", seed, res.HandsPlayed, res.HandsWon)
		}
		want := WinnerPlayer0
		if res.Points[1] > res.Points[0] {
			want = WinnerPlayer1
		}
		if res.Winner != want {
			t.Fatalf("seed %d: winner %s with %v", seed, res.Winner, res.Points)
		}
		if res.PointsLost(engine.Player0) != res.Points[1] {
			t.Fatalf("points lost")
		}
	}
}

func TestPlayMatchAbortsOnRejections(t *testing.T) {
	g := engine.NewGame(engine.WithRand(rand.New(rand.NewSource(1))))
	seats := [2]player.Player{stubbornBot{engine.ActionQuiero}, stubbornBot{engine.ActionQuiero}}
	res, err := PlayMatch(context.Background(), g, seats)
	if !errors.Is(err, ErrTooManyRejections) {
		t.Fatalf("expected ErrTooManyRejections, got %v", err)
	}
	if res.Rejected != MaxRejections {
		t.Fatalf("rejected %d", res.Rejected)
	}
}

func TestPlayMatchHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := engine.NewGame()
	if _, err := PlayMatch(ctx, g, randomSeats(1)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunIsReproducible(t *testing.T) {
	cfg := Config{Agents: [2]string{"random", "rational"}, Games: 12, Seed: 77, Workers: 1}
	serial, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("serial run: %v", err)
	}
	cfg.Workers = 4
	parallel, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Fatalf("worker count changed the series")
	}
	if serial.Games != 12 || serial.Wins[0]+serial.Wins[1]+serial.Ties != 12 {
		t.Fatalf("summary: %+v", serial)
	}
	for i, r := range serial.Results {
		if r.Game != i+1 || r.Agents != cfg.Agents {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
	}
}

func TestRunRejectsUnknownAgent(t *testing.T) {
	if _, err := Run(context.Background(), Config{Agents: [2]string{"random", "oracle"}, Games: 1}); err == nil {
		t.Fatalf("expected unknown agent error")
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Winner: WinnerPlayer0, Points: [2]int{30, 12}, HandsPlayed: 10, HandsWon: [2]int{7, 3}},
		{Winner: WinnerPlayer1, Points: [2]int{20, 31}, HandsPlayed: 14, HandsWon: [2]int{6, 8}},
		{Winner: WinnerPlayer0, Points: [2]int{31, 5}, HandsPlayed: 6, HandsWon: [2]int{5, 1}},
		{Winner: WinnerPlayer1, Points: [2]int{3, 32}, HandsPlayed: 10, HandsWon: [2]int{2, 8}},
	}
	s := Summarize([2]string{"a", "b"}, results)
	if s.Wins != [2]int{2, 2} || s.Ties != 0 {
		t.Fatalf("wins %v ties %d", s.Wins, s.Ties)
	}
	if s.AvgPoints != [2]float64{21, 20} || s.AvgHandsPlayed != 10 || s.AvgHandsWon != [2]float64{5, 5} {
		t.Fatalf("averages: %+v", s)
	}
	if s.WinRate() != 0.5 {
		t.Fatalf("win rate %v", s.WinRate())
	}
	low, high := s.WilsonCI95()
	if !(low < 0.5 && 0.5 < high && low >= 0 && high <= 1) {
		t.Fatalf("interval [%v, %v]", low, high)
	}
	if empty := Summarize([2]string{}, nil); empty.AvgHandsPlayed != 0 || empty.WinRate() != 0 {
		t.Fatalf("empty summary: %+v", empty)
	}
}

func TestWriteCSV(t *testing.T) {
	results := []Result{{Game: 1, Agents: [2]string{"random", "rational"}, Winner: WinnerPlayer1, Points: [2]int{14, 30}, HandsPlayed: 9, HandsWon: [2]int{3, 6}}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 2 || !reflect.DeepEqual(rows[0], csvHeader) {
		t.Fatalf("rows: %v", rows)
	}
	want := []string{"1", "random", "rational", "J1", "14", "30", "30", "14", "9", "3", "6"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("row: %v, want %v", rows[1], want)
	}
}

func TestWriteSummary(t *testing.T) {
	s := Summarize([2]string{"random", "rational"}, []Result{
		{Winner: WinnerPlayer1, Points: [2]int{10, 30}, HandsPlayed: 8, HandsWon: [2]int{2, 6}},
	})
	var buf bytes.Buffer
	if err := WriteSummary(&buf, s, language.English); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"Agent P0: random", "Matches: 1", "P1 wins: 1", "Average points P1: 30.00", "Average hands played: 8.00"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("summary misses %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	if err := WriteSummary(&buf, s, language.Spanish); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Agente J0: random\n") {
		t.Fatalf("spanish summary:\n%s", buf.String())
	}
}

type countingObserver struct {
	accepted, rejected int
	handsOver          int
}

func (o *countingObserver) Accepted(_ engine.Player, _ engine.Action, out engine.Outcome, _ *engine.Game) {
	o.accepted++
	if out.HandOver {
		o.handsOver++
	}
}

func (o *countingObserver) Rejected(engine.Player, engine.Action, error) { o.rejected++ }

func TestPlayMatchNotifiesObservers(t *testing.T) {
	g := engine.NewGame(engine.WithRand(rand.New(rand.NewSource(4))))
	obs := &countingObserver{}
	res, err := PlayMatch(context.Background(), g, randomSeats(4), obs)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if obs.accepted == 0 || obs.rejected != res.Rejected || obs.handsOver != res.HandsPlayed {
		t.Fatalf("observer saw %+v for result %+v", obs, res)
	}
}
