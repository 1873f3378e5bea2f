package dapp

import (
	"fmt"

	"github.com/socialharmony/chain/types"
)

type driverCreate func() Driver

var registered = make(map[string]driverCreate)

// Register records a driver constructor under its fixed name. Called
// from driver package init functions.
func Register(name string, create driverCreate) {
	if create == nil {
		panic("dapp: register driver is nil")
	}
	if _, dup := registered[name]; dup {
		panic(fmt.Sprintf("dapp: register called twice for driver %q", name))
	}
	registered[name] = create
	blog.Debug("register driver", "name", name)
}

// LoadDriver instantiates a registered driver.
func LoadDriver(name string) (Driver, error) {
	create, ok := registered[name]
	if !ok {
		return nil, types.ErrExecNotFound
	}
	return create(), nil
}

// ListDrivers returns the registered driver names.
func ListDrivers() []string {
	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	return names
}

func fmtIndex(v int64) string {
	return fmt.Sprintf("%018d", v)
}
