// Package dataset loads named test datasets from JSON or YAML documents.
//
// A document is a single object whose keys name datasets:
//
//	{
//	  "lijst_willekeurig_3": [3, 1, 2],
//	  "lijst_null_3": [1, null, 3],
//	  "lijnlijst_gewogen": [[0, 1, 5], [1, 2, 3]],
//	  "verbindingslijst_gewogen": [[[1, 5]], [[2, 3]], []],
//	  "hashtabelsleutelswaardes": {"a": [1, 2]}
//	}
//
// Numbers are decoded exactly: integers stay int64 and anything with a
// fraction or exponent becomes float64. Typed accessors (Ints, Floats,
// IntMatrix, IntCube, IntListMap) convert an entry to the shape the data
// structures consume; list accessors skip elements of the wrong type,
// nested accessors reject them with ErrBadShape.
//
// Errors (sentinel):
//
//   - ErrKeyNotFound:       no dataset with the requested name.
//   - ErrBadShape:          the dataset does not have the requested shape.
//   - ErrUnsupportedFormat: file extension or format is not json/yaml.
package dataset
