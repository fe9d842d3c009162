package adapters

import (
	"github.com/de-tools/growth-atlas/pkg/models/api"
	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/config"
)

func MapDomainReportToAPIProjection(report *domain.Report) api.Projection {
	rows := make([]api.YearRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, api.YearRow{
			Year:           row.Year,
			Total:          row.Total,
			Growth:         row.Growth(),
			InterestEarned: row.InterestEarned,
			Contribution:   row.Contribution,
		})
	}

	return api.Projection{
		RunID: report.RunID.String(),
		Title: report.Title,
		Parameters: api.Parameters{
			InitialCapital:     report.Parameters.InitialCapital,
			InterestMultiplier: report.Parameters.InterestMultiplier,
			InterestRate:       report.InterestRate(),
			YearlyContribution: report.Parameters.YearlyContribution,
		},
		Years: rows,
		Cumulative: api.Cumulative{
			Years:        report.Cumulative.Years,
			FinalTotal:   report.Cumulative.FinalTotal,
			Growth:       report.Cumulative.Growth(),
			Interest:     report.Cumulative.Interest,
			Contribution: report.Cumulative.Contribution,
		},
	}
}

func MapConfigInputToAPI(in config.Input) api.ProjectionInput {
	return api.ProjectionInput{
		Capital:      in.Capital,
		Interest:     in.Interest,
		Contribution: in.Contribution,
		Years:        in.Years,
	}
}
