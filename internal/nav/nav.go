// Package nav is the two-phase section navigation state machine. A request
// starts a transition; content swaps only when the effect peaks, and the
// machine accepts new requests again once the effect completes.
package nav

type Section string

const (
	Home          Section = "home"
	Ledger        Section = "ledger"
	Inventory     Section = "inventory"
	Map           Section = "map"
	Relationships Section = "relationships"
	Timeline      Section = "timeline"
	Dossier       Section = "dossier"
	Reports       Section = "reports"
)

var AllSections = []Section{Home, Ledger, Inventory, Map, Relationships, Timeline, Dossier, Reports}

var sectionLabels = map[Section]string{
	Home:          "Home",
	Ledger:        "The Ledger",
	Inventory:     "Inventory",
	Map:           "Territory Map",
	Relationships: "Relationships",
	Timeline:      "Timeline",
	Dossier:       "Dossier",
	Reports:       "Reports",
}

func (s Section) Validate() bool {
	_, ok := sectionLabels[s]
	return ok
}

func (s Section) Label() string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return string(s)
}

func ListSections() []Section { return append([]Section{}, AllSections...) }

// ParseSection accepts a section name.
func ParseSection(s string) (Section, bool) {
	sec := Section(s)
	return sec, sec.Validate()
}

// Next returns the section after s in sidebar order, wrapping around.
func Next(s Section) Section {
	for i, v := range AllSections {
		if v == s {
			return AllSections[(i+1)%len(AllSections)]
		}
	}
	return Home
}

// Prev returns the section before s in sidebar order, wrapping around.
func Prev(s Section) Section {
	for i, v := range AllSections {
		if v == s {
			return AllSections[(i+len(AllSections)-1)%len(AllSections)]
		}
	}
	return Home
}

// State is one of Idle, Transitioning or Settling.
type State interface{ isState() }

type Idle struct{ Current Section }

// Transitioning runs from the request until the effect peaks.
type Transitioning struct{ From, To Section }

// Settling runs from the peak until the effect completes. Content already shows Current.
type Settling struct{ Current Section }

func (Idle) isState()          {}
func (Transitioning) isState() {}
func (Settling) isState()      {}

// Event is one of Requested, Peaked or Completed.
type Event interface{ isEvent() }

type Requested struct{ Target Section }
type Peaked struct{}
type Completed struct{}

func (Requested) isEvent() {}
func (Peaked) isEvent()    {}
func (Completed) isEvent() {}

// Effect tells the caller what to do after Fire.
type Effect int

const (
	None Effect = iota
	BeginTransition
	SwapContent
	EndTransition
)

func (e Effect) String() string {
	switch e {
	case BeginTransition:
		return "begin"
	case SwapContent:
		return "swap"
	case EndTransition:
		return "end"
	default:
		return "none"
	}
}

type Machine struct {
	state State
}

func New(initial Section) *Machine {
	if !initial.Validate() {
		initial = Home
	}
	return &Machine{state: Idle{Current: initial}}
}

func (m *Machine) State() State { return m.state }

// Current is the section whose content is on screen.
func (m *Machine) Current() Section {
	switch s := m.state.(type) {
	case Idle:
		return s.Current
	case Transitioning:
		return s.From
	case Settling:
		return s.Current
	}
	return Home
}

// Pending is the requested section, present only before the peak.
func (m *Machine) Pending() (Section, bool) {
	if s, ok := m.state.(Transitioning); ok {
		return s.To, true
	}
	return "", false
}

// Active reports whether a transition effect is running.
func (m *Machine) Active() bool {
	_, idle := m.state.(Idle)
	return !idle
}

// Fire applies ev and returns the effect the caller should perform.
// Requests that arrive during a transition are dropped.
func (m *Machine) Fire(ev Event) Effect {
	switch s := m.state.(type) {
	case Idle:
		if r, ok := ev.(Requested); ok && r.Target != s.Current && r.Target.Validate() {
			m.state = Transitioning{From: s.Current, To: r.Target}
			return BeginTransition
		}
	case Transitioning:
		switch ev.(type) {
		case Peaked:
			m.state = Settling{Current: s.To}
			return SwapContent
		case Completed:
			// the peak never arrived; commit the target anyway
			m.state = Idle{Current: s.To}
			return SwapContent
		}
	case Settling:
		if _, ok := ev.(Completed); ok {
			m.state = Idle{Current: s.Current}
			return EndTransition
		}
	}
	return None
}
