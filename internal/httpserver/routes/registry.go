package routes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/logger"
)

// Registrar mounts one route group.
type Registrar func(r chi.Router, d deps.Deps)

type group struct {
	name string
	reg  Registrar
}

var groups []group

// Register adds a named route group. Each file of this package registers its
// group from init(). Names must be unique.
func Register(name string, reg Registrar) {
	for _, g := range groups {
		if g.name == name {
			panic(fmt.Sprintf("routes: group %q registered twice", name))
		}
	}
	groups = append(groups, group{name: name, reg: reg})
}

// Groups returns the registered group names in mount order.
func Groups() []string {
	names := make([]string, 0, len(groups))
	for _, g := range sorted() {
		names = append(names, g.name)
	}
	return names
}

// RegisterAll mounts every group on r, sorted by name. Called from httpserver.NewRouter.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, g := range sorted() {
		g.reg(r, d)
		d.Logger.Debug("routes mounted", logger.String("group", g.name))
	}
}

func sorted() []group {
	out := slices.Clone(groups)
	slices.SortFunc(out, func(a, b group) int { return strings.Compare(a.name, b.name) })
	return out
}
