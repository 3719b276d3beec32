package main

import (
	"strings"
	"testing"

	"isozombie/internal/config"
	"isozombie/internal/game"
	"isozombie/internal/monitoring"
	"isozombie/internal/world"
)

func testMap(t *testing.T) *world.MapData {
	t.Helper()
	rows := []string{
		"..........",
		"..Z.......",
		"..........",
		"....T.....",
		".....@....",
		"..........",
		".......Z..",
		"..........",
		"..........",
		"..........",
	}
	md, err := world.NewMapLoader(nil).Parse(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return md
}

func TestScriptedInputTurnsEveryLeg(t *testing.T) {
	tests := []struct {
		tick         int
		moveX, moveY int
		run          bool
	}{
		{0, 1, 0, false},
		{89, 1, 0, false},
		{90, 0, -1, true},
		{180, -1, 0, false},
		{270, 0, 1, true},
		{360, 1, 0, false},
	}
	for _, tt := range tests {
		in := scriptedInput(tt.tick)
		if in.MoveX != tt.moveX || in.MoveY != tt.moveY || in.Run != tt.run || !in.Fire {
			t.Errorf("tick %d: got %+v", tt.tick, in)
		}
	}
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	cfg := config.Default()
	a := runScenario(cfg, testMap(t), 1, 99, 600, 5)
	b := runScenario(cfg, testMap(t), 1, 99, 600, 5)

	if a.kills != b.kills || a.hits != b.hits || a.fired != b.fired || a.contacts != b.contacts || a.finalTile != b.finalTile {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
	if a.routes != b.routes {
		t.Errorf("route stats diverged: %+v vs %+v", a.routes, b.routes)
	}
	if a.zombies != 2 {
		t.Errorf("zombies = %d, want 2", a.zombies)
	}
	if a.kills > a.zombies || a.alive != a.zombies-a.kills {
		t.Errorf("kills=%d alive=%d of %d", a.kills, a.alive, a.zombies)
	}
	if a.fired == 0 {
		t.Errorf("scripted player never fired")
	}
	if len(a.tail) > 5 {
		t.Errorf("tail has %d entries, want at most 5", len(a.tail))
	}
}

func TestFormatRun(t *testing.T) {
	rs := runStats{
		runIndex:       2,
		seed:           43,
		zombies:        3,
		alive:          1,
		kills:          2,
		hits:           7,
		fired:          40,
		contacts:       4,
		clearTick:      -1,
		firstAggroTick: 12,
		firstHitTick:   30,
		firstKillTick:  55,
		firstContact:   -1,
		routes:         monitoring.RouteStats{Found: 3, Failed: 1, NodesExpanded: 17},
		tail: []game.EventEntry{
			{Tick: 55, Subject: "Z1", Category: game.CategoryCombat, Key: "killed", Value: "NormalDeath"},
		},
	}
	got := formatRun(rs)
	for _, want := range []string{
		"--- Run 2 (seed=43) ---",
		"zombies=3 alive=1 kills=2 hits=7 fired=40 contacts=4 clear_tick=-1",
		"first_aggro=12 first_hit=30 first_kill=55 first_contact=-1",
		"found=3 failed=1 failure_ratio=0.25 nodes_expanded=17",
		"events (last 1):",
		"Z1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}
