// Package catalog builds named pattern validators from YAML or JSON
// documents:
//
//	patterns:
//	  - name: amount
//	    pattern: /^[0-9.,]+$/
//	  - name: email
//	    pattern: /^[^@\s]+@[^@\s]+$/i
//	    engine: re2
//
// Each entry's pattern is a /source/flags literal parsed with regex.Parse on
// the entry's engine (or the catalog default) and turned into a
// validator.PatternValidator at load time. Construction fails as a whole:
// duplicate names, bad literals and unknown engines are all reported in one
// joined error and no catalog is returned.
//
// A loaded Catalog is read-only and may be shared between goroutines.
//
//	var cfg catalog.Config
//	config.MustLoad(&cfg)
//
//	c, err := catalog.LoadFromConfig(ctx, cfg, catalog.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	errs, err := c.Validate("amount", &value)
package catalog
