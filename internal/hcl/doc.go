// Package hcl provides the HCL implementation of config.Loader. A project
// file pins down everything a run needs so it can be repeated without a long
// command line:
//
//	root_debate = 2
//
//	source {
//	  paths = ["db/Debates.xml", "db/Positions.xml", "db/Arguments.xml"]
//	}
//
//	output {
//	  json = "maps/free-will.json"
//	  html = "maps/free-will.html"
//	  open = true
//	}
//
//	graph {
//	  argument_key_offset = 10000
//	  position_figure     = "RoundedRectangle"
//	  argument_figure     = "Rectangle"
//	  success_verdict     = 1
//	  all_debates         = 1
//	}
//
//	storage "s3" {
//	  endpoint   = "localhost:9000"
//	  access_key = env.MINIO_ROOT_USER
//	  secret_key = env.MINIO_ROOT_PASSWORD
//	}
//
// Every block and attribute is optional. Expressions can read the process
// environment through the env object. Relative paths are resolved against
// the directory of the file that names them.
package hcl
