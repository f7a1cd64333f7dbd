package typesystem

// CanReceive holds iff every (chain-followed) qualifier of receptor is
// present among provider's (chain-followed) qualifiers. Providers may
// carry extra qualifiers the receptor doesn't demand; not the reverse.
func CanReceive(receptor, provider Type) bool {
	rq := EffectiveQualifiers(receptor)
	pq := EffectiveQualifiers(provider)
	for _, name := range rq.Slice() {
		if !pq.Has(name) {
			return false
		}
	}
	return true
}

// Unify performs directional unification: receptor is the sink,
// provider is the source. On success it may mutate unbound Vars
// reachable from either operand via Bind. It never performs path
// compression.
//
// A Var receptor dispatches differently from a concrete receptor: an
// unbound Var receptor binds itself to the provider outright, before
// ever asking whether the provider is itself an unbound Var. Only once
// the receptor is known to be concrete (or a bound Var, chased to its
// head) does "is the provider an unbound Var" become the question —
// mirroring the two separate unify methods this is drawn from.
func Unify(receptor, provider Type) bool {
	if !CanReceive(receptor, provider) {
		return false
	}

	if rv, ok := receptor.(*Var); ok {
		if !rv.IsBound() {
			rv.Bind(provider)
			return true
		}
		if pv, ok := provider.(*Var); ok && !pv.IsBound() {
			pv.Bind(rv)
			return true
		}
		return Unify(Head(rv), Head(provider))
	}

	if pv, ok := provider.(*Var); ok && !pv.IsBound() {
		pv.Bind(receptor)
		return true
	}

	providerHead := Head(provider)

	switch r := receptor.(type) {
	case *Primitive:
		ph, ok := providerHead.(*Primitive)
		return ok && ph.kind == r.kind

	case *Map:
		pm, ok := providerHead.(*Map)
		if !ok {
			return false
		}
		if r.From != nil {
			if pm.From == nil || !Unify(r.From, pm.From) {
				return false
			}
		}
		return Unify(r.To, pm.To)

	case *Proc:
		pp, ok := providerHead.(*Proc)
		if !ok || len(pp.Args) != len(r.Args) {
			return false
		}
		for i := range r.Args {
			if !Unify(r.Args[i], pp.Args[i]) {
				return false
			}
		}
		return Unify(r.Return, pp.Return)

	default:
		return false
	}
}
