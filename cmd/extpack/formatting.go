package main

import (
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/extpack/extpack/pkg/display"
)

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      display.Bold,
		"upper":     strings.ToUpper,
		"boldUpper": display.BoldUpper,
	})
}
