package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderStats writes a two-column summary of st, followed by its topN
// content words, to w.
func RenderStats(w io.Writer, st Stats, topN int) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	if len(st.Tokens) > 0 {
		tw.AppendRow(table.Row{"Tokens", strings.Join(st.Tokens, " | ")})
		tw.AppendRow(table.Row{"Method", st.Method.String()})
		tw.AppendRow(table.Row{"Score", fmt.Sprintf("%.1f", st.Score)})
	}
	tw.AppendRows([]table.Row{
		{"Characters", st.CharacterCount},
		{"Words", st.WordCount},
		{"Unique words", st.UniqueWords},
		{"Content words", st.ContentWordCount},
		{"Unique content words", st.UniqueContentWords},
		{"Stopwords", st.StopwordCount},
		{"Punctuation", st.PunctuationCount},
		{"Avg word length", fmt.Sprintf("%.2f", st.AvgWordLength)},
		{"Content ratio", fmt.Sprintf("%.1f%%", st.ContentRatio*100)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	if _, err := io.WriteString(w, tw.Render()+"\n"); err != nil {
		return err
	}

	top := st.TopWords(topN)
	if len(top) == 0 {
		return nil
	}
	rows := make([][]string, len(top))
	for i, wc := range top {
		rows[i] = []string{fmt.Sprint(i + 1), wc.Word, fmt.Sprint(wc.Count)}
	}
	_, err := io.WriteString(w, RenderTable([]string{"#", "Word", "Count"}, rows, 0, 2)+"\n")
	return err
}

// RenderTable renders rows under headers. Columns listed in rightAligned
// (0-based) are right aligned.
func RenderTable(headers []string, rows [][]string, rightAligned ...int) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, col := range rightAligned {
		if col < 0 || col >= columns {
			continue
		}
		configs = append(configs, table.ColumnConfig{
			Number:      col + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
