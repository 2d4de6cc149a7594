// Package metar decodes METAR and SPECI surface weather observation reports.
//
// # Report Grammar
//
// A report is a single line of whitespace-separated groups, e.g.
//
//	KSTL 231751Z 27009KT 10SM OVC015 09/06 A3029 RMK AO2 SLP260 T00940061
//
// Each group is classified by its lexical shape. Shapes are written with a
// two-symbol wildcard alphabet: '#' is any digit, '$' is any letter, and
// every other character is literal. For example the observation time has the
// shape "######Z" and a vertical visibility group has the shape "VV###".
//
// Groups are tried against a fixed, ordered list of rules (see [Decode]):
//
//	message type      METAR | SPECI
//	station           $$$$
//	observation time  ######Z                  day, hour, minute (UTC)
//	wind              #####… | VRB…            KT (default), MPS or KPH
//	wind variation    ###V###                  min/max direction
//	visibility        #### (meters) | …SM (statute miles) | CAVOK
//	cloud layer       SKC CLR NSC FEW SCT BKN OVC [###[TCU|CB|ACC]]
//	vertical vis.     VV###                    hundreds of feet
//	temperature       ##/## | ##/M## | M##/M## | ##/ | M##/
//	altimeter         A#### (hundredths inHg) | Q#### (hPa)
//	sea-level press.  SLP###                   tenths of hPa above 1000
//	precise temp.     T########                sign digit + tenths, twice
//	weather           [+|-][qualifiers]codes   before RMK only
//
// A rule is skipped once the field it decodes is present, so the first
// occurrence of a shape wins and similar-looking remark groups (e.g. the
// 5-digit "10100" max-temperature group) are ignored. Cloud layers are the
// exception: up to three are kept, in report order.
//
// # Statute-Mile Fractions
//
// Fractional visibility may arrive as one group ("1/4SM", "M1/4SM" meaning
// less than a quarter mile) or split over two ("2 1/2SM"). A single digit
// immediately preceding a fraction group is added as the whole-number part.
//
// # Sea-Level Pressure
//
// "SLP###" is decoded as value/10 + 1000 hPa. The three-digit encoding is
// ambiguous below roughly 950 and above 1050 hPa; no attempt is made to
// resolve that.
//
// # Failure Semantics
//
// Decoding never fails. Groups that match no rule are skipped and reported
// by [Report.Unrecognized]; groups that match a shape but carry nonsense
// decode to whatever the fixed-position parsing yields.
package metar
