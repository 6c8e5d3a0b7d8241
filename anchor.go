package cvbot

import "sort"

// AnchorSet maps an intent label to its anchor examples: prototypical
// utterances that act as similarity reference points for that intent.
// Immutable after load. The intent vocabulary is whatever the set
// defines, plus the implicit out-of-scope fallback.
type AnchorSet map[string][]string

// Validate returns an error if the anchor set cannot serve as a router
// configuration. A partially built router must never serve queries, so
// an empty set or an intent with zero examples is fatal.
func (a AnchorSet) Validate() error {
	if len(a) == 0 {
		return Errorf(ECONFIG, "anchor set is empty")
	}
	for intent, examples := range a {
		if intent == "" {
			return Errorf(ECONFIG, "anchor set contains an empty intent label")
		}
		if len(examples) == 0 {
			return Errorf(ECONFIG, "intent %q has no anchor examples", intent)
		}
		for _, example := range examples {
			if example == "" {
				return Errorf(ECONFIG, "intent %q has an empty anchor example", intent)
			}
		}
	}
	return nil
}

// Intents returns the intent labels in sorted order. Flattening the set
// in this order makes the router's first-occurrence tie-break
// deterministic across runs.
func (a AnchorSet) Intents() []string {
	intents := make([]string, 0, len(a))
	for intent := range a {
		intents = append(intents, intent)
	}
	sort.Strings(intents)
	return intents
}
