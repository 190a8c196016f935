package ui

import (
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

// Asker runs survey prompts. The default implementation talks to the
// terminal; tests substitute canned answers.
type Asker interface {
	Ask(qs []*survey.Question, response interface{}) error
	AskOne(p survey.Prompt, response interface{}) error
}

type surveyAsker struct{}

func (surveyAsker) Ask(qs []*survey.Question, response interface{}) error {
	return survey.Ask(qs, response)
}

func (surveyAsker) AskOne(p survey.Prompt, response interface{}) error {
	return survey.AskOne(p, response)
}

// ConfigWizard builds a configuration interactively
type ConfigWizard struct {
	out         io.Writer
	asker       Asker
	currentStep int
	totalSteps  int
}

// WizardResult is the outcome of a wizard run. Password is never part of
// Config; the caller stores it in the keyring.
type WizardResult struct {
	Config   *models.Config
	Password string
	Save     bool
}

// NewConfigWizard creates a wizard prompting on the terminal
func NewConfigWizard(w io.Writer) *ConfigWizard {
	return NewConfigWizardWithAsker(w, surveyAsker{})
}

// NewConfigWizardWithAsker creates a wizard using asker for every prompt.
// A nil asker prompts on the terminal.
func NewConfigWizardWithAsker(w io.Writer, asker Asker) *ConfigWizard {
	if asker == nil {
		asker = surveyAsker{}
	}
	return &ConfigWizard{out: w, asker: asker, currentStep: 1, totalSteps: 4}
}

type generationAnswers struct {
	Seed      string
	StartDate string `survey:"start_date"`
	EndDate   string `survey:"end_date"`
}

type outputAnswers struct {
	Format   string
	Path     string
	Compress bool
}

type warehouseAnswers struct {
	Driver   string
	Target   string
	Username string
	Password string
	Database string
}

// Run walks through the wizard steps starting from base, which supplies
// every default shown to the user.
func (w *ConfigWizard) Run(base *models.Config) (*WizardResult, error) {
	ShowHeader(w.out, "perfgen - Configuration Setup")

	cfg := *base
	result := &WizardResult{Config: &cfg}

	steps := []func(*WizardResult) error{
		w.generationStep,
		w.outputStep,
		w.warehouseStep,
		w.reviewStep,
	}
	for _, step := range steps {
		if err := step(result); err != nil {
			if stderrors.Is(err, terminal.InterruptErr) {
				return nil, errors.New(errors.ErrCodeCancelled, "configuration cancelled")
			}
			return nil, errors.Wrap(err, errors.ErrCodeUserInput, "configuration wizard failed")
		}
	}
	return result, nil
}

func (w *ConfigWizard) showProgress(title string) {
	fmt.Fprintf(w.out, "\n%s %s\n", ColorInfo(fmt.Sprintf("Step %d/%d:", w.currentStep, w.totalSteps)), ColorBold(title))
	w.currentStep++
}

func (w *ConfigWizard) generationStep(r *WizardResult) error {
	w.showProgress("Generation")
	cfg := r.Config

	questions := []*survey.Question{
		{
			Name: "seed",
			Prompt: &survey.Input{
				Message: "Random seed:",
				Default: strconv.FormatInt(cfg.Seed, 10),
				Help:    "The same seed reproduces the same dataset; 0 picks a random seed",
			},
			Validate: validateInt,
		},
		{
			Name:     "start_date",
			Prompt:   &survey.Input{Message: "Start date (YYYY-MM-DD):", Default: cfg.StartDate},
			Validate: validateDate,
		},
		{
			Name:     "end_date",
			Prompt:   &survey.Input{Message: "End date (YYYY-MM-DD):", Default: cfg.EndDate},
			Validate: validateDate,
		},
	}

	var answers generationAnswers
	if err := w.asker.Ask(questions, &answers); err != nil {
		return err
	}

	seed, err := strconv.ParseInt(answers.Seed, 10, 64)
	if err != nil {
		return err
	}
	cfg.Seed = seed
	cfg.StartDate = answers.StartDate
	cfg.EndDate = answers.EndDate
	return nil
}

func (w *ConfigWizard) outputStep(r *WizardResult) error {
	w.showProgress("Output")
	cfg := r.Config

	questions := []*survey.Question{
		{
			Name: "format",
			Prompt: &survey.Select{
				Message: "Output format:",
				Options: []string{"xlsx", "csv"},
				Default: cfg.Output.Format,
			},
		},
		{
			Name: "path",
			Prompt: &survey.Input{
				Message: "Output path:",
				Default: cfg.Output.Path,
				Help:    "Workbook file for xlsx, directory for csv",
			},
			Validate: survey.Required,
		},
		{
			Name:   "compress",
			Prompt: &survey.Confirm{Message: "Compress CSV files with snappy?", Default: cfg.Output.Compress},
		},
	}

	var answers outputAnswers
	if err := w.asker.Ask(questions, &answers); err != nil {
		return err
	}
	cfg.Output = models.Output{Format: answers.Format, Path: answers.Path, Compress: answers.Compress}
	return nil
}

func (w *ConfigWizard) warehouseStep(r *WizardResult) error {
	w.showProgress("Warehouse")
	cfg := r.Config

	configure := false
	if err := w.asker.AskOne(&survey.Confirm{
		Message: "Configure a warehouse for 'perfgen load'?",
		Default: false,
	}, &configure); err != nil {
		return err
	}
	if !configure {
		return nil
	}

	questions := []*survey.Question{
		{
			Name: "driver",
			Prompt: &survey.Select{
				Message: "Warehouse driver:",
				Options: []string{"mysql", "snowflake"},
				Default: cfg.Warehouse.Driver,
			},
		},
		{
			Name: "target",
			Prompt: &survey.Input{
				Message: "Host (mysql) or account (snowflake):",
				Default: cfg.Warehouse.Host,
			},
			Validate: survey.Required,
		},
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: "Username:", Default: cfg.Warehouse.Username},
			Validate: survey.Required,
		},
		{
			Name: "password",
			Prompt: &survey.Password{
				Message: "Password:",
				Help:    "Stored in the system keyring, never in the config file",
			},
		},
		{
			Name:     "database",
			Prompt:   &survey.Input{Message: "Database:", Default: cfg.Warehouse.Database},
			Validate: survey.Required,
		},
	}

	var answers warehouseAnswers
	if err := w.asker.Ask(questions, &answers); err != nil {
		return err
	}

	cfg.Warehouse.Driver = answers.Driver
	if answers.Driver == "snowflake" {
		cfg.Warehouse.Account = answers.Target
		cfg.Warehouse.Host = ""
	} else {
		cfg.Warehouse.Host = answers.Target
	}
	cfg.Warehouse.Username = answers.Username
	cfg.Warehouse.Database = answers.Database
	r.Password = answers.Password
	return nil
}

func (w *ConfigWizard) reviewStep(r *WizardResult) error {
	w.showProgress("Review")
	cfg := r.Config

	fmt.Fprintf(w.out, "  %-14s %d\n", "Seed:", cfg.Seed)
	fmt.Fprintf(w.out, "  %-14s %s to %s\n", "Range:", cfg.StartDate, cfg.EndDate)
	fmt.Fprintf(w.out, "  %-14s %s (%s)\n", "Output:", cfg.Output.Path, cfg.Output.Format)
	if cfg.Warehouse.Username != "" {
		fmt.Fprintf(w.out, "  %-14s %s\n", "Warehouse:", cfg.Warehouse.Driver)
	}

	return w.asker.AskOne(&survey.Confirm{Message: "Save this configuration?", Default: true}, &r.Save)
}

func validateInt(ans interface{}) error {
	s, _ := ans.(string)
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	return nil
}

func validateDate(ans interface{}) error {
	s, _ := ans.(string)
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return nil
}
