package dynamo

import "go.uber.org/zap"

// Config holds global configuration for the engine core.
var Config config = config{
	logger:         zap.NewNop(),
	familyCapacity: 256,
}

type config struct {
	logger         *zap.Logger
	familyCapacity int
}

// SetLogger installs a logger for engine lifecycle events. Passing nil
// restores the default no-op logger.
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// SetFamilyCapacity bounds how many distinct families a Families registry
// created afterwards may allocate. Indices address bits in every entity's
// family bitset, so the cap must fit the bitset representation.
func (c *config) SetFamilyCapacity(n int) {
	c.familyCapacity = n
}
