// Package yamlconf provides the YAML implementation of the config.Loader
// interface. A document has an optional `tree` and a list of `sorts`:
//
//	tree:
//	  branch: root
//	  children:
//	    - leaf: a
//	    - branch: inner
//	      children:
//	        - leaf: b
//	          label: B
//	sorts:
//	  - name: demo
//	    algorithm: ascending
//	    switch_to: descending
//	    input: [c, a, b]
package yamlconf
