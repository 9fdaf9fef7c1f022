package callback

import "context"

/* Small interfaces, composed into Repository
 * Context is always the first parameter in functions that do I/O
 */

// Resolver maps the address of an inbound request to its receiver
type Resolver interface {
	/* ResolveReceiver is a single equality lookup on (application root path, receiver path)
	 * callbackPath is opaque and may contain "/"; no prefix matching is done
	 * Returns ErrReceiverNotFound when nothing matches
	 */
	ResolveReceiver(ctx context.Context, rootPath, callbackPath string) (Receiver, error)
}

// Reader provides read operations
type Reader interface {
	Resolver
	GetApplication(ctx context.Context, id int64) (Application, error)
	GetApplicationByRootPath(ctx context.Context, rootPath string) (Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
	GetReceiver(ctx context.Context, id int64) (Receiver, error)
	ListReceivers(ctx context.Context, appID int64) ([]Receiver, error)
	ListForwardTargets(ctx context.Context, receiverID int64) ([]ForwardTarget, error)
	ListEnabledForwardTargets(ctx context.Context, receiverID int64) ([]ForwardTarget, error)
	GetForwardTarget(ctx context.Context, id int64) (ForwardTarget, error)
	GetMessage(ctx context.Context, id int64) (Message, error)
	ListMessages(ctx context.Context, receiverID int64, page Page) ([]Message, error)
	ListApplicationMessages(ctx context.Context, appID int64, page Page) ([]Message, error)
	ListForwardLogs(ctx context.Context, messageID int64) ([]ForwardLog, error)
	ListTargetForwardLogs(ctx context.Context, targetID int64, page Page) ([]ForwardLog, error)
	CountForwardLogsByStatus(ctx context.Context) (map[string]int64, error)
}

// Writer provides write operations
type Writer interface {
	CreateApplication(ctx context.Context, app Application) (Application, error)
	// UpdateApplication renames an application; the root path never changes
	UpdateApplication(ctx context.Context, app Application) (Application, error)
	DeleteApplication(ctx context.Context, id int64) error
	CreateReceiver(ctx context.Context, r Receiver) (Receiver, error)
	UpdateReceiver(ctx context.Context, r Receiver) error
	DeleteReceiver(ctx context.Context, id int64) error
	CreateForwardTarget(ctx context.Context, t ForwardTarget) (ForwardTarget, error)
	SetForwardTargetEnabled(ctx context.Context, id int64, enabled bool) error
	UpdateForwardTarget(ctx context.Context, t ForwardTarget) error
	DeleteForwardTarget(ctx context.Context, id int64) error
	/* CreateMessage inserts one message atomically and returns it with its id and
	 * server-assigned timestamp
	 */
	CreateMessage(ctx context.Context, m Message) (Message, error)
	CreateForwardLog(ctx context.Context, l ForwardLog) (ForwardLog, error)
	DeleteMessage(ctx context.Context, id int64) error
	// DeleteMessages removes every message of a receiver and returns how many were removed
	DeleteMessages(ctx context.Context, receiverID int64) (int64, error)
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
