// Package hcl provides the HCL implementation of config.Loader. A settings
// file is a flat list of optional attributes:
//
//	log_level     = "info"
//	log_format    = "json"
//	output_format = "yaml"
//	strict        = true
//	debug         = false
package hcl
