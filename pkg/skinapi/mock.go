package skinapi

import "context"

// MockClient is a mock catalog client for testing
type MockClient struct {
	skins     []Item
	agents    []Item
	baseURL   string
	skinsErr  error
	agentsErr error
}

// MockOption configures the mock client
type MockOption func(*MockClient)

// WithSkins sets the skins to return
func WithSkins(skins []Item) MockOption {
	return func(m *MockClient) {
		m.skins = skins
	}
}

// WithAgents sets the agents to return
func WithAgents(agents []Item) MockOption {
	return func(m *MockClient) {
		m.agents = agents
	}
}

// WithSkinsError sets an error to return from FetchSkins
func WithSkinsError(err error) MockOption {
	return func(m *MockClient) {
		m.skinsErr = err
	}
}

// WithAgentsError sets an error to return from FetchAgents
func WithAgentsError(err error) MockOption {
	return func(m *MockClient) {
		m.agentsErr = err
	}
}

// WithBaseURL sets the base URL
func WithBaseURL(url string) MockOption {
	return func(m *MockClient) {
		m.baseURL = url
	}
}

// NewMockClient creates a new mock catalog client
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{
		baseURL: "http://mock-catalog.local",
		skins:   DefaultMockSkins(),
		agents:  DefaultMockAgents(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BaseURL returns the configured base URL
func (m *MockClient) BaseURL() string {
	return m.baseURL
}

// SetBaseURL updates the base URL
func (m *MockClient) SetBaseURL(url string) {
	m.baseURL = url
}

// FetchSkins returns the configured mock skins or error
func (m *MockClient) FetchSkins(ctx context.Context) ([]Item, error) {
	if m.skinsErr != nil {
		return nil, m.skinsErr
	}
	return m.skins, nil
}

// FetchAgents returns the configured mock agents or error
func (m *MockClient) FetchAgents(ctx context.Context) ([]Item, error) {
	if m.agentsErr != nil {
		return nil, m.agentsErr
	}
	return m.agents, nil
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)

func skin(id, name, weapon, category, rarity string) Item {
	return Item{
		ID:       FlexString(id),
		Name:     name,
		Weapon:   &Ref{Name: weapon},
		Category: &Ref{Name: category},
		Rarity:   &Ref{Name: rarity},
		Image:    "https://placehold.co/256x192/1f2937/ffffff?text=" + id,
	}
}

func agent(id, name, team, rarity string) Item {
	return Item{
		ID:       FlexString(id),
		Name:     name,
		Category: &Ref{Name: "Agents"},
		Rarity:   &Ref{Name: rarity},
		Team:     &Ref{ID: FlexString(team), Name: team},
		Image:    "https://placehold.co/256x192/374151/ffffff?text=" + id,
	}
}

// DefaultMockSkins returns a small but complete sample catalog
func DefaultMockSkins() []Item {
	return []Item{
		skin("skin-1", "★ Karambit | Fade", "Karambit", "Knives", "Covert"),
		skin("skin-2", "★ Butterfly Knife | Doppler", "Butterfly Knife", "Knives", "Covert"),
		skin("skin-3", "★ Sport Gloves | Vice", "Sport Gloves", "Gloves", "Extraordinary"),
		skin("skin-4", "★ Hand Wraps | Slaughter", "Hand Wraps", "Gloves", "Extraordinary"),
		skin("skin-5", "Glock-18 | Fade", "Glock-18", "Pistols", "Restricted"),
		skin("skin-6", "USP-S | Kill Confirmed", "USP-S", "Pistols", "Covert"),
		skin("skin-7", "Desert Eagle | Blaze", "Desert Eagle", "Pistols", "Restricted"),
		skin("skin-8", "P250 | See Ya Later", "P250", "Pistols", "Covert"),
		skin("skin-9", "MAC-10 | Neon Rider", "MAC-10", "SMGs", "Covert"),
		skin("skin-10", "MP9 | Starlight Protector", "MP9", "SMGs", "Covert"),
		skin("skin-11", "P90 | Asiimov", "P90", "SMGs", "Covert"),
		skin("skin-12", "AK-47 | Redline", "AK-47", "Rifles", "Classified"),
		skin("skin-13", "AK-47 | Vulcan", "AK-47", "Rifles", "Covert"),
		skin("skin-14", "M4A4 | Howl", "M4A4", "Rifles", "Contraband"),
		skin("skin-15", "M4A1-S | Printstream", "M4A1-S", "Rifles", "Covert"),
		skin("skin-16", "AWP | Asiimov", "AWP", "Rifles", "Covert"),
		skin("skin-17", "AWP | Dragon Lore", "AWP", "Rifles", "Covert"),
		skin("skin-18", "SSG 08 | Dragonfire", "SSG 08", "Rifles", "Covert"),
		skin("skin-19", "Zeus x27 | Olympus", "Zeus x27", "Equipment", "Restricted"),
	}
}

// DefaultMockAgents returns sample agents for both sides
func DefaultMockAgents() []Item {
	return []Item{
		agent("agent-1", "Special Agent Ava | FBI", "counter-terrorists", "Master"),
		agent("agent-2", "Lt. Commander Ricksaw | NSWC SEAL", "counter-terrorists", "Master"),
		agent("agent-3", "Sir Bloody Darryl | The Professionals", "terrorists", "Master"),
		agent("agent-4", "The Elite Mr. Muhlik | Elite Crew", "terrorists", "Superior"),
	}
}
