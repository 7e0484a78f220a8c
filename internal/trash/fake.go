package trash

// FakeMover records Move calls for tests instead of touching the
// filesystem. FailOn maps a path to the error Move returns for it.
type FakeMover struct {
	Calls  []string
	FailOn map[string]error
}

func (f *FakeMover) Move(path string) error {
	f.Calls = append(f.Calls, path)
	if err, ok := f.FailOn[path]; ok {
		return err
	}
	return nil
}
