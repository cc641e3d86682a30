// Package manager ties argument declarations, resolution and the usage page
// together for programs that take name=value style arguments.
//
// A program declares its arguments, then resolves os.Args[1:]:
//
//	m := manager.New(manager.Options{Appendix: methods})
//	m.Add("sourcefile", "input file path", coerce.ExistingPath())
//	m.Add("sinkfile", "output file path", coerce.Path())
//	m.Add("nsamples", "sampling count", coerce.Int(), registry.WithDefault(10))
//
//	values, err := m.Parse(os.Args[1:])
//	if errors.Is(err, manager.ErrHelp) {
//		os.Exit(0)
//	}
//	if err != nil {
//		os.Exit(2)
//	}
//
// All of the following are then accepted:
//
//	prog infile outfile
//	prog infile outfile 20
//	prog infile sinkfile=outfile nsamples=20
//	prog sourcefile=infile sinkfile=outfile nsamples=20
//
// Any of 'help', 'usage', 'what', 'how' or '?' prints the usage page instead.
// On a bad command line the usage page is printed together with the reason.
// The manager never exits the process; that is left to the caller.
package manager
