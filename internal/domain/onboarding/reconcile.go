package onboarding

// ReconcileByPosition aligns a child collection with a new submission
// positionally: the first min(len(existing), len(incoming)) pairs are
// updated in place, surplus incoming values are created, and surplus
// existing rows are deactivated. Rows are never deleted.
//
// The same algorithm serves every child collection (addresses, family
// members, prior employments, qualifications, documents, bank
// accounts, cheques); callers supply the persistence callbacks.
func ReconcileByPosition[E, N any](
	existing []E,
	incoming []N,
	update func(E, N) error,
	create func(N) error,
	deactivate func(E) error,
) error {
	shared := len(existing)
	if len(incoming) < shared {
		shared = len(incoming)
	}

	for i := 0; i < shared; i++ {
		if err := update(existing[i], incoming[i]); err != nil {
			return err
		}
	}
	for i := shared; i < len(incoming); i++ {
		if err := create(incoming[i]); err != nil {
			return err
		}
	}
	for i := shared; i < len(existing); i++ {
		if err := deactivate(existing[i]); err != nil {
			return err
		}
	}
	return nil
}
