// Package table provides the extension size-limit table and its loaders.
//
// A table document is a mapping with a single key, size_limit_table, whose
// value is an ordered list of records. Each record names a file-type category,
// the extensions the category supports, the extensions that are explicitly
// unsupported, and a size limit in kilobytes:
//
//	{
//	  "size_limit_table": [
//	    {
//	      "name": "Image",
//	      "supported_extensions": ["png", "jpg"],
//	      "unsupported_extensions": ["bmp"],
//	      "limit": 500
//	    }
//	  ]
//	}
//
// Tables are loaded once and never mutated. Extensions are compared exactly;
// no case folding or dot stripping is applied.
//
// Load accepts JSON, YAML (.yaml, .yml) and TOML (.toml) documents with the
// same structure.
package table
