package rotowire

import "testing"

func headerRow(timeText, away, home string) Row {
	return Row{Cells: []Cell{{Text: timeText}, {Text: away}, {Text: home}}}
}

func playerRow(pos, away, home string, awayLink, homeLink bool) Row {
	return Row{Cells: []Cell{
		{Text: pos},
		{Text: away, PlayerLink: awayLink},
		{Text: home, PlayerLink: homeLink},
	}}
}

func TestExtractHeaderAndPlayers(t *testing.T) {
	rows := []Row{
		headerRow("7:30 PM", "BOS", "@NYK"),
		playerRow("PG", "Jayson Tatum", "Jalen Brunson", true, true),
		playerRow("SG", "Derrick White", "Josh Hart", true, true),
	}

	data := Extract(rows)

	if len(data.TeamOrder) != 2 || data.TeamOrder[0] != "BOS" || data.TeamOrder[1] != "NYK" {
		t.Fatalf("unexpected team order: %v", data.TeamOrder)
	}
	if data.GameTimes["BOS"] != "7:30 PM" || data.GameTimes["NYK"] != "7:30 PM" {
		t.Fatalf("unexpected game times: %v", data.GameTimes)
	}
	if len(data.Starters["BOS"]) != 2 || data.Starters["BOS"][0].RawName != "Jayson Tatum" {
		t.Fatalf("unexpected away starters: %+v", data.Starters["BOS"])
	}
	if len(data.Starters["NYK"]) != 2 || data.Starters["NYK"][1].RawName != "Josh Hart" {
		t.Fatalf("unexpected home starters: %+v", data.Starters["NYK"])
	}
	if data.Starters["BOS"][1].Slot != 1 {
		t.Fatalf("expected slot order preserved, got %+v", data.Starters["BOS"][1])
	}
}

func TestExtractDefaultTimeWhenFirstCellNotClock(t *testing.T) {
	rows := []Row{headerRow("Tonight", "BOS", "@NYK")}
	data := Extract(rows)
	if data.GameTimes["BOS"] != "7:00 PM" {
		t.Fatalf("expected default time, got %q", data.GameTimes["BOS"])
	}
}

func TestExtractHeaderWithAtInSecondCell(t *testing.T) {
	rows := []Row{{Cells: []Cell{{Text: "BOS"}, {Text: "@NYK"}, {Text: "preview"}}}}
	data := Extract(rows)
	if len(data.TeamOrder) != 2 || data.TeamOrder[0] != "BOS" || data.TeamOrder[1] != "NYK" {
		t.Fatalf("unexpected team order: %v", data.TeamOrder)
	}
	if data.GameTimes["BOS"] != "7:00 PM" {
		t.Fatalf("expected default time without a clock cell, got %q", data.GameTimes["BOS"])
	}
}

func TestExtractCapsAtFiveStarters(t *testing.T) {
	rows := []Row{headerRow("7:00 PM", "BOS", "@NYK")}
	for i := 0; i < 7; i++ {
		rows = append(rows, playerRow("PG", "Away Player", "Home Player", true, true))
	}

	data := Extract(rows)
	if len(data.Starters["BOS"]) != 5 {
		t.Fatalf("expected cap at 5 starters, got %d", len(data.Starters["BOS"]))
	}
	if len(data.Starters["NYK"]) != 5 {
		t.Fatalf("expected cap at 5 starters, got %d", len(data.Starters["NYK"]))
	}
}

func TestExtractIgnoresCellsWithoutPlayerLink(t *testing.T) {
	rows := []Row{
		headerRow("7:00 PM", "BOS", "@NYK"),
		playerRow("PG", "-", "Jalen Brunson", false, true),
	}

	data := Extract(rows)
	if len(data.Starters["BOS"]) != 0 {
		t.Fatalf("expected linkless cell skipped, got %+v", data.Starters["BOS"])
	}
	if len(data.Starters["NYK"]) != 1 {
		t.Fatalf("expected linked cell kept, got %+v", data.Starters["NYK"])
	}
}

func TestExtractVerifiedFlag(t *testing.T) {
	rows := []Row{
		headerRow("7:00 PM", "BOS", "@NYK"),
		{Cells: []Cell{
			{Text: "PG"},
			{Text: "Jayson Tatum", Class: "lineup-player is-confirmed", PlayerLink: true},
			{Text: "Jalen Brunson", Class: "lineup-player", PlayerLink: true},
		}},
	}

	data := Extract(rows)
	if !data.Starters["BOS"][0].Verified {
		t.Fatal("expected confirmed marker class to set verified")
	}
	if data.Starters["NYK"][0].Verified {
		t.Fatal("expected unmarked cell to stay unverified")
	}
}

func TestExtractSkipsPlayerRowsWithoutContext(t *testing.T) {
	rows := []Row{playerRow("PG", "Jayson Tatum", "Jalen Brunson", true, true)}
	data := Extract(rows)
	if len(data.Starters) != 0 || len(data.TeamOrder) != 0 {
		t.Fatalf("expected nothing extracted without a header, got %+v", data)
	}
}

func TestExtractSkipsUnrecognizedAndMalformedRows(t *testing.T) {
	rows := []Row{
		{Cells: []Cell{{Text: "Injuries"}}},
		headerRow("7:00 PM", "BOS", "@NYK"),
		{Cells: []Cell{{Text: "PG"}}}, // missing player cells
		{},
		playerRow("SG", "Derrick White", "Josh Hart", true, true),
	}

	data := Extract(rows)
	if len(data.Starters["BOS"]) != 1 || data.Starters["BOS"][0].RawName != "Derrick White" {
		t.Fatalf("expected extraction to continue past bad rows, got %+v", data.Starters["BOS"])
	}
}

func TestExtractHeaderReinitializesLists(t *testing.T) {
	rows := []Row{
		headerRow("7:00 PM", "BOS", "@NYK"),
		playerRow("PG", "Jayson Tatum", "Jalen Brunson", true, true),
		headerRow("7:30 PM", "BOS", "@NYK"),
	}

	data := Extract(rows)
	if len(data.Starters["BOS"]) != 0 {
		t.Fatalf("expected re-initialized starter list, got %+v", data.Starters["BOS"])
	}
	if data.GameTimes["BOS"] != "7:30 PM" {
		t.Fatalf("expected updated time, got %q", data.GameTimes["BOS"])
	}
	if len(data.TeamOrder) != 2 {
		t.Fatalf("expected no duplicate team order entries, got %v", data.TeamOrder)
	}
}

func TestExtractMultipleGamesInterleaved(t *testing.T) {
	rows := []Row{
		headerRow("7:00 PM", "BOS", "@NYK"),
		playerRow("PG", "Jayson Tatum", "Jalen Brunson", true, true),
		headerRow("9:30 PM", "LAL", "@GSW"),
		playerRow("PG", "Luka Doncic", "Stephen Curry", true, true),
	}

	data := Extract(rows)
	want := []string{"BOS", "NYK", "LAL", "GSW"}
	if len(data.TeamOrder) != 4 {
		t.Fatalf("unexpected team order: %v", data.TeamOrder)
	}
	for i, team := range want {
		if data.TeamOrder[i] != team {
			t.Fatalf("unexpected team order: %v", data.TeamOrder)
		}
	}
	if data.Starters["LAL"][0].RawName != "Luka Doncic" {
		t.Fatalf("player row attributed to wrong game: %+v", data.Starters)
	}
	if data.Starters["GSW"][0].RawName != "Stephen Curry" {
		t.Fatalf("player row attributed to wrong game: %+v", data.Starters)
	}
}
