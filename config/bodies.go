package config

import (
	"errors"
	"fmt"
	"sort"

	"solarsystem/orbit"
)

// resolveBodies orders the named sections so every parent precedes its
// children (by depth, then name) and converts parent names to ids.
func resolveBodies(sections map[string]*bodySection) ([]orbit.BodySpec, error) {
	var errs []error

	depth := make(map[string]int, len(sections))
	var depthOf func(name string, seen map[string]bool) (int, error)
	depthOf = func(name string, seen map[string]bool) (int, error) {
		if d, ok := depth[name]; ok {
			return d, nil
		}
		sec := sections[name]
		if sec.Parent == "" {
			depth[name] = 0
			return 0, nil
		}
		if _, ok := sections[sec.Parent]; !ok {
			return 0, fmt.Errorf("body %q: %w %q", name, orbit.ErrUnknownParent, sec.Parent)
		}
		if seen[name] {
			return 0, fmt.Errorf("body %q: parent cycle", name)
		}
		seen[name] = true
		d, err := depthOf(sec.Parent, seen)
		if err != nil {
			return 0, err
		}
		depth[name] = d + 1
		return d + 1, nil
	}

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	ok := names[:0:0]
	for _, name := range names {
		if _, err := depthOf(name, map[string]bool{}); err != nil {
			errs = append(errs, err)
			continue
		}
		ok = append(ok, name)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.SliceStable(ok, func(i, j int) bool { return depth[ok[i]] < depth[ok[j]] })

	ids := make(map[string]orbit.BodyID, len(ok))
	specs := make([]orbit.BodySpec, 0, len(ok))
	for _, name := range ok {
		sec := sections[name]
		c, err := ParseColor(sec.Color)
		if err != nil {
			errs = append(errs, fmt.Errorf("body %q: %w", name, err))
		}
		spec := orbit.BodySpec{
			Name:        name,
			Radius:      float32(sec.Radius),
			Color:       c,
			OrbitRadius: float32(sec.OrbitRadius),
			OrbitSpeed:  float32(sec.OrbitSpeed),
		}
		if sec.Parent != "" {
			spec.Parent = ids[sec.Parent]
		}
		specs = append(specs, spec)
		ids[name] = orbit.BodyID(len(specs))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return specs, nil
}
