package page

import (
	"fmt"

	"github.com/murphyqm/derelict/internal/chart"
)

const surveySource = "Data from Python Developers Survey 2022. Copyright © JetBrains s.r.o. 2023. CC BY 4.0."

// Dataset ids, also used in chart URLs.
const (
	DependencyFilesID = "dependency-files"
	DependencyToolsID = "dependency-tools"
)

// Datasets are the survey results charted on the page.
type Datasets struct {
	DependencyFiles *chart.Dataset
	DependencyTools *chart.Dataset
}

// ByID looks up a dataset by its id.
func (d Datasets) ByID(id string) (*chart.Dataset, bool) {
	for _, ds := range d.All() {
		if ds.ID() == id {
			return ds, true
		}
	}
	return nil, false
}

// All returns the non-nil datasets in page order.
func (d Datasets) All() []*chart.Dataset {
	var out []*chart.Dataset
	for _, ds := range []*chart.Dataset{d.DependencyFiles, d.DependencyTools} {
		if ds != nil {
			out = append(out, ds)
		}
	}
	return out
}

// SurveyDatasets builds the JetBrains Python Developers Survey 2022 results.
func SurveyDatasets() (Datasets, error) {
	files, err := chart.NewDataset(DependencyFilesID,
		"What format is your application dependency information stored in?",
		surveySource,
		chart.Entry{Label: "requirements.txt", Value: 69},
		chart.Entry{Label: "pyproject.toml", Value: 33},
		chart.Entry{Label: "poetry.lock", Value: 25},
		chart.Entry{Label: "pipfile.lock", Value: 15},
		chart.Entry{Label: "Conda environment.yml", Value: 11},
		chart.Entry{Label: "pip constraints.txt", Value: 6},
		chart.Entry{Label: "Other", Value: 4},
		chart.Entry{Label: "None", Value: 4},
	)
	if err != nil {
		return Datasets{}, fmt.Errorf("building survey datasets: %w", err)
	}

	tools, err := chart.NewDataset(DependencyToolsID,
		"Which tools do you use for application dependency management?",
		surveySource,
		chart.Entry{Label: "poetry", Value: 30},
		chart.Entry{Label: "pipenv", Value: 28},
		chart.Entry{Label: "pip-tools", Value: 26},
		chart.Entry{Label: "Other", Value: 4},
		chart.Entry{Label: "None", Value: 28},
	)
	if err != nil {
		return Datasets{}, fmt.Errorf("building survey datasets: %w", err)
	}

	return Datasets{DependencyFiles: files, DependencyTools: tools}, nil
}
