// Package hnxml reads Hypernomicon XML record files into a record.Snapshot.
//
// A Hypernomicon database is split over several files (Debates.xml,
// Positions.xml, Arguments.xml, ...) that all share the same shape:
//
//	<records>
//	  <record type="position" id="6">
//	    <name>Y</name>
//	    <debate id="2"/>
//	    <larger_position id="5"/>
//	  </record>
//	</records>
//
// Records of types other than debate, position and argument are skipped, so
// the whole database directory can be handed to the reader.
package hnxml
