// Package config provides configuration management for hivemcp.
//
// Configuration is loaded from config.yaml in a single directory. The
// default directory is ~/.config/hivemcp; commands accept --config-path
// to use another one. A missing file is not an error: the defaults are
// used instead.
//
// # File Format
//
//	server:
//	  transport: http        # http, streamable-http, sse or stdio
//	  host: localhost
//	  port: 3002
//	hive:
//	  maxAgents: 1000
//	  matchPolicy: fifo      # fifo or energy
//	  execution:
//	    enabled: false
//	    interval: 1s
//	    workDuration: 3s
//	nlp:
//	  timeout: 2s
//	events:
//	  nats:
//	    enabled: false
//	    url: ""              # external server; empty with embedded: true
//	    embedded: false
//	    port: -1             # embedded server port, -1 picks a free one
//	    subjectPrefix: hive
//	logging:
//	  level: info            # debug, info, warn or error
//	  format: text           # text or json
//
// Values that are absent from the file keep their defaults.
//
// # Validation
//
// Validate reports every problem at once as ValidationErrors.
//
// # Hot Reload
//
// Watcher follows config.yaml with fsnotify and hands each valid new
// configuration to a callback. Only settings that can change at runtime
// (log level and NLP timeout) are expected to be applied by callers.
package config
