package driver

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/scusemua/linked-hashtable/common/utils"
)

// Render formats a report for the terminal.
func Render(report *Report) string {
	var sb strings.Builder

	sb.WriteString(utils.HeadingStyle.Render(report.Name))
	sb.WriteString("\n")

	for _, step := range report.Steps {
		sb.WriteString(utils.StatsStyle.Render(step.Title))
		sb.WriteString("\n")

		for _, msg := range step.Messages {
			sb.WriteString(msg)
			sb.WriteString("\n")
		}

		for _, entry := range step.Entries {
			sb.WriteString(utils.KeyValue(entry.Key, entry.Value))
			sb.WriteString("\n")
		}
	}

	if report.Error != "" {
		sb.WriteString(utils.ErrorStyle.Render(report.Error))
		sb.WriteString("\n")
	}

	sb.WriteString(utils.StatsStyle.Render(report.Stats.String()))
	sb.WriteString("\n")

	return sb.String()
}

// RenderJSON formats the reports as an indented JSON array.
func RenderJSON(reports []*Report) (string, error) {
	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
