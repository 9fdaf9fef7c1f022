package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/marcelsud/callback-inbox/callback"
	"gopkg.in/yaml.v3"
)

/* Loader reads a declarative seed file (YAML) describing applications,
 * their receivers and forward targets, and validates it before anything is provisioned
 */

var rootPathPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)

// File represents the structure of the seed YAML
type File struct {
	Applications []ApplicationConfig `yaml:"applications"`
}

type ApplicationConfig struct {
	Name      string           `yaml:"name"`
	RootPath  string           `yaml:"root_path"`
	Receivers []ReceiverConfig `yaml:"receivers"`
}

type ReceiverConfig struct {
	Name        string          `yaml:"name"`
	Path        string          `yaml:"path"`
	AutoForward bool            `yaml:"auto_forward"`
	Response    *ResponseConfig `yaml:"response"`
	Targets     []TargetConfig  `yaml:"targets"`
}

// ResponseConfig is a response override; body may be any YAML value and is stored as JSON
type ResponseConfig struct {
	Status  int               `yaml:"status"`
	Headers map[string]string `yaml:"headers"`
	Body    any               `yaml:"body"`
}

type TargetConfig struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled *bool  `yaml:"enabled"` // Default: true
}

// Application is a validated application declaration
type Application struct {
	Name      string
	RootPath  string
	Receivers []Receiver
}

type Receiver struct {
	Name        string
	Path        string
	AutoForward bool
	Response    callback.ResponseConfig
	Targets     []Target
}

type Target struct {
	Name    string
	URL     string
	Enabled bool
}

// Loader holds the loaded declarations
type Loader struct {
	applications []Application
}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, parses and validates the seed file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	return l.Parse(data)
}

// Parse validates seed YAML already in memory; nothing is kept when it fails
func (l *Loader) Parse(data []byte) error {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}

	apps := make([]Application, 0, len(file.Applications))
	roots := make(map[string]bool, len(file.Applications))
	for _, ac := range file.Applications {
		app, err := ac.toApplication()
		if err != nil {
			return fmt.Errorf("validating seed: %w", err)
		}
		if roots[app.RootPath] {
			return fmt.Errorf("validating seed: duplicate root_path %q", app.RootPath)
		}
		roots[app.RootPath] = true
		apps = append(apps, app)
	}

	l.applications = apps
	return nil
}

// Applications returns the loaded declarations in file order
func (l *Loader) Applications() []Application {
	return l.applications
}

func (ac ApplicationConfig) toApplication() (Application, error) {
	app := Application{
		Name:     strings.TrimSpace(ac.Name),
		RootPath: strings.TrimSpace(ac.RootPath),
	}
	if app.Name == "" {
		return Application{}, fmt.Errorf("application name cannot be empty")
	}
	if !rootPathPattern.MatchString(app.RootPath) {
		return Application{}, fmt.Errorf("root_path of application %s may only contain letters, digits, '-' and '_'", app.Name)
	}

	paths := make(map[string]bool, len(ac.Receivers))
	for _, rc := range ac.Receivers {
		r, err := rc.toReceiver()
		if err != nil {
			return Application{}, fmt.Errorf("application %s: %w", app.Name, err)
		}
		if paths[r.Path] {
			return Application{}, fmt.Errorf("application %s: duplicate receiver path %q", app.Name, r.Path)
		}
		paths[r.Path] = true
		app.Receivers = append(app.Receivers, r)
	}
	return app, nil
}

func (rc ReceiverConfig) toReceiver() (Receiver, error) {
	r := Receiver{
		Name:        strings.TrimSpace(rc.Name),
		AutoForward: rc.AutoForward,
	}
	if r.Name == "" {
		return Receiver{}, fmt.Errorf("receiver name cannot be empty")
	}
	path, err := callback.NormalizeReceiverPath(rc.Path)
	if err != nil {
		return Receiver{}, fmt.Errorf("receiver %s: %w", r.Name, err)
	}
	r.Path = path

	if rc.Response != nil {
		r.Response = callback.ResponseConfig{
			Status:  rc.Response.Status,
			Headers: rc.Response.Headers,
		}
		if rc.Response.Body != nil {
			body, err := json.Marshal(rc.Response.Body)
			if err != nil {
				return Receiver{}, fmt.Errorf("receiver %s: encoding response body: %w", r.Name, err)
			}
			r.Response.Body = body
		}
		if err := r.Response.Validate(); err != nil {
			return Receiver{}, fmt.Errorf("receiver %s: %w", r.Name, err)
		}
	}

	for _, tc := range rc.Targets {
		t := Target{
			Name:    strings.TrimSpace(tc.Name),
			URL:     strings.TrimSpace(tc.URL),
			Enabled: tc.Enabled == nil || *tc.Enabled,
		}
		if t.Name == "" {
			return Receiver{}, fmt.Errorf("receiver %s: target name cannot be empty", r.Name)
		}
		if err := callback.ValidateTargetURL(t.URL); err != nil {
			return Receiver{}, fmt.Errorf("receiver %s, target %s: %w", r.Name, t.Name, err)
		}
		r.Targets = append(r.Targets, t)
	}
	return r, nil
}
