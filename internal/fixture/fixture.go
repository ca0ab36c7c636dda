// Package fixture holds a small music-review dataset shared by tests and
// examples: one reviews table and five tables keyed by reviewId.
package fixture

import (
	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/schema"
)

var (
	titles      = []string{"Album 1", "Album 2", "Album 3", "Album 4", "Album 5"}
	scores      = []float64{1.5, 3.0, 7.5, 9.0, 5.5}
	authors     = []string{"aberfeldy", "aarktica", "aberdeen", "aceyalone", "aceyalone"}
	authorTypes = []string{"senior staff writer", "contributor", "senior staff writer", "contributor", "senior staff writer"}
	pubDates    = []string{"2020-01-01", "2021-01-02", "2022-01-03", "2020-01-04", "2022-01-05"}
	genres      = []string{"rock", "pop", "rap", "rock", "pop"}

	years   = []int64{2020, 2021, 2022, 2020, 2022}
	labels  = []string{"rough trade", "silber", "better looking", "deconstruction", "silber"}
	styles  = []string{"rock", "pop", "experimental", "rock", "electronic"}
	artists = []string{"Aberfeldy", "aarktica", "aberdeen", "aceyalone", "aceyalone"}
	content = []string{
		"Aberfeldy recorded their debut, Young Forever, using a single microphone.",
		"Can there be any purpose behind a masters degree in the psychology of music.",
		"If you caught this little blip in the mid-90s, you had a sensitive radar.",
		"Welcome to our wrap-up of Game Four between the East and West Coast finals.",
		"Aceyalone's transcendent smoothness is such that he can reference Laverne and Shirley.",
	}
)

// Reviews returns the full dataset in no particular table order.
func Reviews() *schema.Dataset {
	return &schema.Dataset{Tables: []schema.Table{
		child("years", "year", func(i int) core.Key { return core.Int(years[i]) }),
		child("labels", "label", text(labels)),
		ReviewsTable(),
		child("genres", "style", text(styles)),
		child("content", "content", text(content)),
		child("artists", "artist", text(artists)),
	}}
}

// ReviewsTable returns the root table, keyed by reviewId.
func ReviewsTable() schema.Table {
	t := schema.Table{
		Name:        "reviews",
		Columns:     []string{"reviewId", "title", "score", "author", "author_type", "pub_date", "genre"},
		PrimaryKeys: []string{"reviewId"},
	}
	for i := range titles {
		t.Rows = append(t.Rows, schema.Row{
			"reviewId":    core.Int(int64(i)),
			"title":       core.Text(titles[i]),
			"score":       core.Float(scores[i]),
			"author":      core.Text(authors[i]),
			"author_type": core.Text(authorTypes[i]),
			"pub_date":    core.Text(pubDates[i]),
			"genre":       core.Text(genres[i]),
		})
	}
	return t
}

// ScoreRows returns the genre/score training rows of the reviews table.
func ScoreRows() []schema.Row {
	rows := make([]schema.Row, len(scores))
	for i := range scores {
		rows[i] = schema.Row{"genre": core.Text(genres[i]), "score": core.Float(scores[i])}
	}
	return rows
}

func child(name, column string, value func(int) core.Key) schema.Table {
	t := schema.Table{
		Name:        name,
		Columns:     []string{"reviewId", column},
		ForeignKeys: []schema.ForeignKey{{Column: "reviewId", RefTable: "reviews", RefColumn: "reviewId"}},
	}
	for i := range titles {
		t.Rows = append(t.Rows, schema.Row{"reviewId": core.Int(int64(i)), column: value(i)})
	}
	return t
}

func text(vals []string) func(int) core.Key {
	return func(i int) core.Key { return core.Text(vals[i]) }
}
