package callback

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// receiverPathPattern restricts receiver paths to letters, digits, "-", "_" and "/"
var receiverPathPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_/]+$`)

const rootPathLength = 16

// ReceiverUpdate carries a full reconfiguration of a receiver
type ReceiverUpdate struct {
	Name        string
	Path        string
	AutoForward bool
	Response    *ResponseConfig // nil keeps the stored override
}

// UseCase defines the business operations of the callback inbox
type UseCase interface {
	Resolve(ctx context.Context, rootPath, callbackPath string) (Receiver, error)
	Record(ctx context.Context, receiverID int64, req RequestContext) (Message, error)
	EnabledTargets(ctx context.Context, receiverID int64) ([]ForwardTarget, error)
	Receiver(ctx context.Context, id int64) (Receiver, error)
	LogForward(ctx context.Context, l ForwardLog) (ForwardLog, error)

	CreateApplication(ctx context.Context, name string) (Application, error)
	Application(ctx context.Context, id int64) (Application, error)
	Applications(ctx context.Context) ([]Application, error)
	RenameApplication(ctx context.Context, id int64, name string) (Application, error)
	DeleteApplication(ctx context.Context, id int64) error
	CreateReceiver(ctx context.Context, appID int64, name, path string) (Receiver, error)
	Receivers(ctx context.Context, appID int64) ([]Receiver, error)
	ConfigureReceiver(ctx context.Context, id int64, update ReceiverUpdate) (Receiver, error)
	SetAutoForward(ctx context.Context, id int64, autoForward bool) error
	DeleteReceiver(ctx context.Context, id int64) error
	CreateForwardTarget(ctx context.Context, receiverID int64, name, targetURL string) (ForwardTarget, error)
	Targets(ctx context.Context, receiverID int64) ([]ForwardTarget, error)
	Target(ctx context.Context, id int64) (ForwardTarget, error)
	SetTargetEnabled(ctx context.Context, id int64, enabled bool) error
	UpdateTarget(ctx context.Context, id int64, update TargetUpdate) (ForwardTarget, error)
	DeleteTarget(ctx context.Context, id int64) error
	TargetForwardLogs(ctx context.Context, targetID int64, page Page) ([]ForwardLog, error)
	Message(ctx context.Context, id int64) (Message, error)
	Messages(ctx context.Context, receiverID int64, page Page) ([]Message, error)
	ApplicationMessages(ctx context.Context, appID int64, page Page) ([]Message, error)
	DeleteMessage(ctx context.Context, id int64) error
	ClearMessages(ctx context.Context, receiverID int64) (int64, error)
	ForwardLogs(ctx context.Context, messageID int64) ([]ForwardLog, error)
	ForwardStats(ctx context.Context) (map[string]int64, error)
}

type Service struct {
	Repo Repository
}

// NewService creates a new callback service with dependency injection
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// NewRootPath generates the opaque first path segment of an application
func NewRootPath() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:rootPathLength]
}

// Resolve finds the receiver addressed by (rootPath, callbackPath); it has no side effects
func (s *Service) Resolve(ctx context.Context, rootPath, callbackPath string) (Receiver, error) {
	r, err := s.Repo.ResolveReceiver(ctx, rootPath, callbackPath)
	if err != nil {
		return Receiver{}, fmt.Errorf("resolving receiver: %w", err)
	}
	return r, nil
}

// Record stores an inbound request as a new message of the receiver
func (s *Service) Record(ctx context.Context, receiverID int64, req RequestContext) (Message, error) {
	m := Message{
		ReceiverID: receiverID,
		Method:     req.Method,
		Headers:    req.Headers,
		Body:       req.Body,
		Query:      req.Query,
		IP:         req.IP,
		UserAgent:  req.UserAgent,
	}
	if m.Headers == nil {
		m.Headers = map[string]string{}
	}
	if m.Query == nil {
		m.Query = map[string][]string{}
	}
	stored, err := s.Repo.CreateMessage(ctx, m)
	if err != nil {
		return Message{}, fmt.Errorf("recording message: %w", err)
	}
	return stored, nil
}

// EnabledTargets lists the forward targets that take part in auto-forwarding
func (s *Service) EnabledTargets(ctx context.Context, receiverID int64) ([]ForwardTarget, error) {
	targets, err := s.Repo.ListEnabledForwardTargets(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("listing enabled forward targets: %w", err)
	}
	return targets, nil
}

func (s *Service) Receiver(ctx context.Context, id int64) (Receiver, error) {
	r, err := s.Repo.GetReceiver(ctx, id)
	if err != nil {
		return Receiver{}, fmt.Errorf("getting receiver: %w", err)
	}
	return r, nil
}

// LogForward stores the outcome of one forward attempt
func (s *Service) LogForward(ctx context.Context, l ForwardLog) (ForwardLog, error) {
	if err := l.Status.Validate(); err != nil {
		return ForwardLog{}, fmt.Errorf("validating forward log: %w", err)
	}
	stored, err := s.Repo.CreateForwardLog(ctx, l)
	if err != nil {
		return ForwardLog{}, fmt.Errorf("storing forward log: %w", err)
	}
	return stored, nil
}

func (s *Service) CreateApplication(ctx context.Context, name string) (Application, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Application{}, fmt.Errorf("%w: application name cannot be empty", ErrInvalidConfig)
	}
	app, err := s.Repo.CreateApplication(ctx, Application{
		Name:     name,
		RootPath: NewRootPath(),
	})
	if err != nil {
		return Application{}, fmt.Errorf("creating application: %w", err)
	}
	return app, nil
}

func (s *Service) Application(ctx context.Context, id int64) (Application, error) {
	app, err := s.Repo.GetApplication(ctx, id)
	if err != nil {
		return Application{}, fmt.Errorf("getting application: %w", err)
	}
	return app, nil
}

func (s *Service) Applications(ctx context.Context) ([]Application, error) {
	apps, err := s.Repo.ListApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	return apps, nil
}

// RenameApplication changes the display name; callback URLs stay the same
func (s *Service) RenameApplication(ctx context.Context, id int64, name string) (Application, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Application{}, fmt.Errorf("%w: application name cannot be empty", ErrInvalidConfig)
	}
	app, err := s.Repo.UpdateApplication(ctx, Application{ID: id, Name: name})
	if err != nil {
		return Application{}, fmt.Errorf("updating application: %w", err)
	}
	return app, nil
}

// DeleteApplication removes the application and, by cascade, everything it owns
func (s *Service) DeleteApplication(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteApplication(ctx, id); err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}
	return nil
}

func (s *Service) CreateReceiver(ctx context.Context, appID int64, name, path string) (Receiver, error) {
	name, path, err := normalizeReceiver(name, path)
	if err != nil {
		return Receiver{}, err
	}
	r, err := s.Repo.CreateReceiver(ctx, Receiver{
		AppID: appID,
		Name:  name,
		Path:  path,
	})
	if err != nil {
		return Receiver{}, fmt.Errorf("creating receiver: %w", err)
	}
	return r, nil
}

// Receivers lists the receivers of an existing application
func (s *Service) Receivers(ctx context.Context, appID int64) ([]Receiver, error) {
	if _, err := s.Repo.GetApplication(ctx, appID); err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}
	receivers, err := s.Repo.ListReceivers(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("listing receivers: %w", err)
	}
	return receivers, nil
}

/* ConfigureReceiver replaces name, path, auto-forward flag and optionally the response override
 * Invalid overrides are rejected here so that a stored configuration always renders
 */
func (s *Service) ConfigureReceiver(ctx context.Context, id int64, update ReceiverUpdate) (Receiver, error) {
	name, path, err := normalizeReceiver(update.Name, update.Path)
	if err != nil {
		return Receiver{}, err
	}
	if update.Response != nil {
		if err := update.Response.Validate(); err != nil {
			return Receiver{}, err
		}
	}

	r, err := s.Repo.GetReceiver(ctx, id)
	if err != nil {
		return Receiver{}, fmt.Errorf("getting receiver: %w", err)
	}
	r.Name = name
	r.Path = path
	r.AutoForward = update.AutoForward
	if update.Response != nil {
		r.Response = *update.Response
	}

	if err := s.Repo.UpdateReceiver(ctx, r); err != nil {
		return Receiver{}, fmt.Errorf("updating receiver: %w", err)
	}
	return r, nil
}

func (s *Service) SetAutoForward(ctx context.Context, id int64, autoForward bool) error {
	r, err := s.Repo.GetReceiver(ctx, id)
	if err != nil {
		return fmt.Errorf("getting receiver: %w", err)
	}
	r.AutoForward = autoForward
	if err := s.Repo.UpdateReceiver(ctx, r); err != nil {
		return fmt.Errorf("updating receiver: %w", err)
	}
	return nil
}

func (s *Service) DeleteReceiver(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteReceiver(ctx, id); err != nil {
		return fmt.Errorf("deleting receiver: %w", err)
	}
	return nil
}

func (s *Service) CreateForwardTarget(ctx context.Context, receiverID int64, name, targetURL string) (ForwardTarget, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ForwardTarget{}, fmt.Errorf("%w: target name cannot be empty", ErrInvalidConfig)
	}
	if err := ValidateTargetURL(targetURL); err != nil {
		return ForwardTarget{}, err
	}
	t, err := s.Repo.CreateForwardTarget(ctx, ForwardTarget{
		ReceiverID: receiverID,
		Name:       name,
		URL:        strings.TrimSpace(targetURL),
		Enabled:    true,
	})
	if err != nil {
		return ForwardTarget{}, fmt.Errorf("creating forward target: %w", err)
	}
	return t, nil
}

func (s *Service) Targets(ctx context.Context, receiverID int64) ([]ForwardTarget, error) {
	targets, err := s.Repo.ListForwardTargets(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("listing forward targets: %w", err)
	}
	return targets, nil
}

func (s *Service) Target(ctx context.Context, id int64) (ForwardTarget, error) {
	t, err := s.Repo.GetForwardTarget(ctx, id)
	if err != nil {
		return ForwardTarget{}, fmt.Errorf("getting forward target: %w", err)
	}
	return t, nil
}

// SetTargetEnabled toggles a target without deleting it
func (s *Service) SetTargetEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := s.Repo.SetForwardTargetEnabled(ctx, id, enabled); err != nil {
		return fmt.Errorf("updating forward target: %w", err)
	}
	return nil
}

func (s *Service) UpdateTarget(ctx context.Context, id int64, update TargetUpdate) (ForwardTarget, error) {
	name := strings.TrimSpace(update.Name)
	if name == "" {
		return ForwardTarget{}, fmt.Errorf("%w: target name cannot be empty", ErrInvalidConfig)
	}
	if err := ValidateTargetURL(update.URL); err != nil {
		return ForwardTarget{}, err
	}

	t, err := s.Repo.GetForwardTarget(ctx, id)
	if err != nil {
		return ForwardTarget{}, fmt.Errorf("getting forward target: %w", err)
	}
	t.Name = name
	t.URL = strings.TrimSpace(update.URL)
	if update.Enabled != nil {
		t.Enabled = *update.Enabled
	}

	if err := s.Repo.UpdateForwardTarget(ctx, t); err != nil {
		return ForwardTarget{}, fmt.Errorf("updating forward target: %w", err)
	}
	return t, nil
}

// DeleteTarget removes a target together with its forward history
func (s *Service) DeleteTarget(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteForwardTarget(ctx, id); err != nil {
		return fmt.Errorf("deleting forward target: %w", err)
	}
	return nil
}

func (s *Service) TargetForwardLogs(ctx context.Context, targetID int64, page Page) ([]ForwardLog, error) {
	if _, err := s.Repo.GetForwardTarget(ctx, targetID); err != nil {
		return nil, fmt.Errorf("getting forward target: %w", err)
	}
	logs, err := s.Repo.ListTargetForwardLogs(ctx, targetID, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("listing forward logs: %w", err)
	}
	return logs, nil
}

func (s *Service) Message(ctx context.Context, id int64) (Message, error) {
	m, err := s.Repo.GetMessage(ctx, id)
	if err != nil {
		return Message{}, fmt.Errorf("getting message: %w", err)
	}
	return m, nil
}

// Messages lists a receiver's messages, newest first
func (s *Service) Messages(ctx context.Context, receiverID int64, page Page) ([]Message, error) {
	if _, err := s.Repo.GetReceiver(ctx, receiverID); err != nil {
		return nil, fmt.Errorf("getting receiver: %w", err)
	}
	messages, err := s.Repo.ListMessages(ctx, receiverID, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}

// ApplicationMessages lists the messages of every receiver of an application, newest first
func (s *Service) ApplicationMessages(ctx context.Context, appID int64, page Page) ([]Message, error) {
	if _, err := s.Repo.GetApplication(ctx, appID); err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}
	messages, err := s.Repo.ListApplicationMessages(ctx, appID, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}

// DeleteMessage removes a message and its forward logs
func (s *Service) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}
	return nil
}

// ClearMessages empties a receiver's inbox and reports how many messages were removed
func (s *Service) ClearMessages(ctx context.Context, receiverID int64) (int64, error) {
	if _, err := s.Repo.GetReceiver(ctx, receiverID); err != nil {
		return 0, fmt.Errorf("getting receiver: %w", err)
	}
	n, err := s.Repo.DeleteMessages(ctx, receiverID)
	if err != nil {
		return 0, fmt.Errorf("clearing messages: %w", err)
	}
	return n, nil
}

func (s *Service) ForwardLogs(ctx context.Context, messageID int64) ([]ForwardLog, error) {
	logs, err := s.Repo.ListForwardLogs(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("listing forward logs: %w", err)
	}
	return logs, nil
}

// ForwardStats counts forward logs per status name
func (s *Service) ForwardStats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.Repo.CountForwardLogsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting forward logs: %w", err)
	}
	return counts, nil
}

// ValidateTargetURL accepts absolute http and https URLs only
func ValidateTargetURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: invalid target url: %v", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: target url must be an absolute http(s) url", ErrInvalidConfig)
	}
	return nil
}

// NormalizeReceiverPath trims surrounding slashes and checks the allowed characters
func NormalizeReceiverPath(path string) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return "", fmt.Errorf("%w: receiver path cannot be empty", ErrInvalidConfig)
	}
	if !receiverPathPattern.MatchString(path) {
		return "", fmt.Errorf("%w: receiver path may only contain letters, digits, '-', '_' and '/'", ErrInvalidConfig)
	}
	return path, nil
}

func normalizeReceiver(name, path string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: receiver name cannot be empty", ErrInvalidConfig)
	}
	path, err := NormalizeReceiverPath(path)
	if err != nil {
		return "", "", err
	}
	return name, path, nil
}
