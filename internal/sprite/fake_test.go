package sprite

type recordedOutput struct {
	primitives []Primitive
}

func (out *recordedOutput) Append(p Primitive) {
	out.primitives = append(out.primitives, p)
}

type fakeSurface struct {
	name    string
	outputs [kindCount]*recordedOutput
}

func newFakeSurface(name string) *fakeSurface {
	s := &fakeSurface{name: name}
	for i := range s.outputs {
		s.outputs[i] = &recordedOutput{}
	}
	return s
}

func (s *fakeSurface) Name() string { return s.name }

func (s *fakeSurface) Output(kind Kind) Output {
	if kind < 0 || kind >= kindCount {
		return nil
	}
	return s.outputs[kind]
}

type fakeSurfaces map[string]*fakeSurface

func (surfaces fakeSurfaces) Surface(name string) Surface {
	s, ok := surfaces[name]
	if !ok {
		s = newFakeSurface(name)
		surfaces[name] = s
	}
	return s
}
