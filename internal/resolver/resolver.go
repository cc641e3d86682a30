package resolver

import (
	"github.com/vk/kwargs/internal/registry"
)

// slot is the assignment state of one declared argument.
type slot struct {
	spec   registry.Spec
	raw    string
	filled bool
}

// Resolve matches args against the declarations in reg.
func Resolve(reg *registry.Registry, args []string) Result {
	active, ignored := splitAtSeparator(args)

	// Help wins over anything else before the separator, including tokens
	// that would fail on their own.
	for _, raw := range active {
		if IsHelpKeyword(raw) {
			return Result{Outcome: HelpRequested, Ignored: ignored}
		}
	}

	specs := reg.Specs()
	slots := make([]slot, len(specs))
	byName := make(map[string]int, len(specs))
	for i, spec := range specs {
		slots[i] = slot{spec: spec}
		byName[spec.Name] = i
	}

	fail := func(err error) Result {
		return Result{Outcome: Failed, Ignored: ignored, Err: err}
	}

	cursor := 0
	for pos, raw := range active {
		tok := classify(raw)
		switch tok.kind {
		case keyword:
			i, ok := byName[tok.name]
			if !ok {
				return fail(&registry.UnknownNameError{Name: tok.name})
			}
			if slots[i].filled {
				return fail(&DuplicateAssignmentError{Name: tok.name, Ordinal: slots[i].spec.Ordinal})
			}
			slots[i].raw = tok.value
			slots[i].filled = true
		case positional:
			cursor = nextUnfilled(slots, cursor)
			if cursor == len(slots) {
				return fail(&TooManyArgumentsError{Value: tok.value, Position: pos + 1})
			}
			slots[cursor].raw = tok.value
			slots[cursor].filled = true
		}
	}

	for _, s := range slots {
		if !s.filled && s.spec.Mandatory() {
			return fail(&MissingMandatoryArgumentError{Name: s.spec.Name, Ordinal: s.spec.Ordinal})
		}
	}

	values := make(Values, len(slots))
	for _, s := range slots {
		if !s.filled {
			values[s.spec.Name] = s.spec.Default
			continue
		}
		v, err := s.spec.Coercer.Coerce(s.raw)
		if err != nil {
			return fail(&TypeCoercionError{Name: s.spec.Name, Raw: s.raw, Err: err})
		}
		values[s.spec.Name] = v
	}

	return Result{Outcome: Resolved, Values: values, Ignored: ignored}
}

// splitAtSeparator returns the tokens before the first separator and a copy
// of the tokens after it.
func splitAtSeparator(args []string) (active, ignored []string) {
	for i, raw := range args {
		if raw == Separator {
			return args[:i], append([]string{}, args[i+1:]...)
		}
	}
	return args, []string{}
}

// nextUnfilled returns the index of the first unfilled slot at or after from,
// or len(slots) if there is none.
func nextUnfilled(slots []slot, from int) int {
	for from < len(slots) && slots[from].filled {
		from++
	}
	return from
}
