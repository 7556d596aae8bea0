package output

// Mediator lets values decide how they are represented in a given format before the Outputer sees them
type Mediator struct {
	Outputer
	format Format
}

// Marshaller is implemented by values that render differently per format
type Marshaller interface {
	MarshalOutput(Format) interface{}
}

func (m *Mediator) Print(v interface{}) {
	m.Outputer.Print(mediatorValue(v, m.format))
}

func (m *Mediator) Error(v interface{}) {
	m.Outputer.Error(mediatorValue(v, m.format))
}

func (m *Mediator) Notice(v interface{}) {
	m.Outputer.Notice(mediatorValue(v, m.format))
}

func mediatorValue(v interface{}, format Format) interface{} {
	vt, ok := v.(Marshaller)
	if !ok {
		return v
	}
	return vt.MarshalOutput(format)
}
