// Package cliarg is a declarative command line argument parser: build an
// App out of Args and Groups, call Parse, and read results back off the
// returned ArgMatches. The engine underneath is the internal model/lex/
// match/validate/accum pipeline; this package is the fluent builder and
// query surface over it.
//
// A minimal program:
//
//	app := cliarg.NewApp("mytool").Version("1.0.0").About("does a thing")
//	app.Arg("name").Long("name").Short('n').TakesValue().Required()
//	matches, err := app.Parse(os.Args)
//	if err != nil {
//	    fmt.Fprint(os.Stderr, err)
//	    os.Exit(2)
//	}
//	fmt.Println(matches.Value("name"))
package cliarg
