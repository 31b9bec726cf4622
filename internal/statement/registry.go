package statement

// BankInfo is the read-only listing surfaced for bank selection.
type BankInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// Registry is the capability map from bank id to its parser. Built once at
// process start; reads only after that, so no locking.
type Registry struct {
	parsers map[string]Parser
	order   []string
}

// NewRegistry returns the registry with every statically registered bank.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	r.register(&bcpParser{})
	r.register(&cgdParser{})
	return r
}

func (r *Registry) register(p Parser) {
	id := p.Config().ID
	if _, ok := r.parsers[id]; ok {
		panic("duplicate bank parser: " + id)
	}
	r.parsers[id] = p
	r.order = append(r.order, id)
}

// Get returns the parser for a bank id. The second return is false for
// unknown ids; callers must treat that as an unsupported-bank client
// error, never a crash.
func (r *Registry) Get(bankID string) (Parser, bool) {
	p, ok := r.parsers[bankID]
	return p, ok
}

// List returns bank metadata in registration order.
func (r *Registry) List() []BankInfo {
	infos := make([]BankInfo, 0, len(r.order))
	for _, id := range r.order {
		cfg := r.parsers[id].Config()
		infos = append(infos, BankInfo{
			ID:       cfg.ID,
			Name:     cfg.DisplayName,
			Country:  cfg.Country,
			Currency: cfg.Currency,
		})
	}
	return infos
}

// SupportedIDs returns the registered bank ids in registration order.
func (r *Registry) SupportedIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
