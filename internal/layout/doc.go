// Package layout implements readers for text-based sensor-layout files.
//
// Four file families are supported, selected purely by filename suffix:
//   - .sfp: EGI geodesic layouts, rows of "label x y z"
//   - .elc: sectioned plaintext with "Positions" and "Labels" blocks (10-5 system)
//   - .txt: Easycap layouts, a header row then "label theta phi" in degrees
//   - .csd: CSD toolbox layouts, two header rows then
//     "label theta phi radius x y z off_sph"
//
// Every reader produces a Layout: parallel slices of labels and Cartesian
// positions. Parsing is all-or-nothing; a malformed row fails the whole file.
//
// Example:
//
//	lay, err := layout.ParseFile("standard-1020.elc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, label := range lay.Labels {
//	    fmt.Println(label, lay.Positions[i])
//	}
package layout
