package chains

import "errors"

// ErrEmptyInput is returned by the ranking queries when no chain metrics
// are available to rank. Callers turn it into a user-facing message
// ("no restaurant chains detected in this dataset").
var ErrEmptyInput = errors.New("no chain metrics to rank")
