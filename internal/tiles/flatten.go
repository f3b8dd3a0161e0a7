package tiles

import "tile-automata/internal/core"

// RuleFlattener replaces every tile with a flat tile of its current resolved
// identity. All identities are captured before any tile is replaced, so the
// result does not depend on replacement order.
type RuleFlattener struct{}

// Flatten implements Flattener.
func (RuleFlattener) Flatten(s Surface) error {
	fs, ok := s.(FlatSetter)
	if !ok {
		return ErrNotFlattenable
	}
	type resolved struct {
		p  core.Position
		id Identity
	}
	var snapshot []resolved
	for _, p := range s.Positions() {
		if s.HasTile(p) {
			snapshot = append(snapshot, resolved{p: p, id: s.ResolvedIdentity(p)})
		}
	}
	for _, r := range snapshot {
		fs.SetFlatTile(r.p, r.id)
	}
	return nil
}
