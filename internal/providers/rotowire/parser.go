package rotowire

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseRows tokenizes lineup markup into table rows. It makes no assumption
// of valid HTML beyond what the tokenizer tolerates: stray tags and unclosed
// elements simply end up as unrecognized rows for the extractor to skip.
func ParseRows(r io.Reader) ([]Row, error) {
	tokenizer := html.NewTokenizer(r)

	var (
		rows    []Row
		row     *Row
		cell    *Cell
		text    strings.Builder
		sawRows bool
	)

	flushCell := func() {
		if row == nil || cell == nil {
			return
		}
		cell.Text = collapseWhitespace(text.String())
		row.Cells = append(row.Cells, *cell)
		cell = nil
		text.Reset()
	}
	flushRow := func() {
		flushCell()
		if row != nil {
			rows = append(rows, *row)
			row = nil
		}
	}

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			flushRow()
			if err := tokenizer.Err(); err != io.EOF {
				return nil, err
			}
			if !sawRows {
				return nil, errNoRows
			}
			return rows, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "tr":
				flushRow()
				row = &Row{}
				sawRows = true
			case "td", "th":
				flushCell()
				if row != nil {
					cell = &Cell{Class: attr(token, "class")}
				}
			case "a":
				if cell != nil && strings.Contains(attr(token, "href"), playerLinkFragment) {
					cell.PlayerLink = true
				}
			}

		case html.EndTagToken:
			switch tokenizer.Token().Data {
			case "tr":
				flushRow()
			case "td", "th":
				flushCell()
			}

		case html.TextToken:
			if cell != nil {
				text.Write(tokenizer.Text())
				text.WriteByte(' ')
			}
		}
	}
}

func attr(token html.Token, name string) string {
	for _, a := range token.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
