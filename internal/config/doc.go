// Package config provides configuration parsing for htmf.
//
// The configuration is stored in htmf.yaml, looked up from the working
// directory upwards. Every field is optional; missing fields keep their
// defaults.
//
// # Configuration File Structure
//
//	render:
//	  pretty: true
//	  indent: "  "
//	convert:
//	  package: views
//	  func: Page
//	preview:
//	  addr: localhost:7070
//	  dir: ./site
//	  rateLimit: 20
//	  burst: 40
//	  metrics: true
//	  shutdownTimeout: 5s
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Preview.Addr)
package config
