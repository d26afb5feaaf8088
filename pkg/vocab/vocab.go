// Package vocab defines the RDF vocabulary terms the ontology analyzer
// recognizes: namespace URIs, typing and import predicates, and the
// annotation properties used for labels and descriptions.
package vocab

// Namespace URIs for the standard vocabularies.
const (
	// NamespaceRDF is the standard RDF namespace.
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// NamespaceRDFS is the RDF Schema namespace.
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// NamespaceOWL is the Web Ontology Language namespace.
	NamespaceOWL = "http://www.w3.org/2002/07/owl#"

	// NamespaceXSD is the XML Schema namespace for datatypes.
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema"

	// NamespaceDC is the legacy Dublin Core elements namespace.
	NamespaceDC = "http://purl.org/dc/elements/1.1/"

	// NamespaceDCTerms is the Dublin Core terms namespace.
	NamespaceDCTerms = "http://purl.org/dc/terms/"
)

// Core typing and ontology-structure terms.
const (
	// RDFType is the rdf:type predicate.
	RDFType = NamespaceRDF + "type"

	// RDFProperty is the rdf:Property class.
	RDFProperty = NamespaceRDF + "Property"

	// RDFSClass is the rdfs:Class class.
	RDFSClass = NamespaceRDFS + "Class"

	// OWLClass is the owl:Class class.
	OWLClass = NamespaceOWL + "Class"

	// OWLOntology is the owl:Ontology class.
	OWLOntology = NamespaceOWL + "Ontology"

	// OWLImports is the owl:imports predicate.
	OWLImports = NamespaceOWL + "imports"

	// OWLObjectProperty is the owl:ObjectProperty class.
	OWLObjectProperty = NamespaceOWL + "ObjectProperty"

	// OWLDatatypeProperty is the owl:DatatypeProperty class.
	OWLDatatypeProperty = NamespaceOWL + "DatatypeProperty"

	// OWLAnnotationProperty is the owl:AnnotationProperty class.
	OWLAnnotationProperty = NamespaceOWL + "AnnotationProperty"

	// OWLOntologyProperty is the owl:OntologyProperty class.
	OWLOntologyProperty = NamespaceOWL + "OntologyProperty"
)

// Alignment predicates that imply a dependency between namespaces.
const (
	// RDFSSubClassOf is the rdfs:subClassOf predicate.
	RDFSSubClassOf = NamespaceRDFS + "subClassOf"

	// RDFSSubPropertyOf is the rdfs:subPropertyOf predicate.
	RDFSSubPropertyOf = NamespaceRDFS + "subPropertyOf"

	// RDFSSeeAlso is the rdfs:seeAlso predicate.
	RDFSSeeAlso = NamespaceRDFS + "seeAlso"

	// OWLEquivalentClass is the owl:equivalentClass predicate.
	OWLEquivalentClass = NamespaceOWL + "equivalentClass"

	// OWLEquivalentProperty is the owl:equivalentProperty predicate.
	OWLEquivalentProperty = NamespaceOWL + "equivalentProperty"

	// OWLSameAs is the owl:sameAs predicate.
	OWLSameAs = NamespaceOWL + "sameAs"

	// OWLInverseOf is the owl:inverseOf predicate.
	OWLInverseOf = NamespaceOWL + "inverseOf"
)

// Annotation properties used for descriptive metadata.
const (
	// RDFSLabel is the rdfs:label predicate.
	RDFSLabel = NamespaceRDFS + "label"

	// RDFSComment is the rdfs:comment predicate.
	RDFSComment = NamespaceRDFS + "comment"

	// RDFSDomain is the rdfs:domain predicate.
	RDFSDomain = NamespaceRDFS + "domain"

	// RDFSRange is the rdfs:range predicate.
	RDFSRange = NamespaceRDFS + "range"

	// DCTitle is the legacy Dublin Core title predicate.
	DCTitle = NamespaceDC + "title"

	// DCDescription is the legacy Dublin Core description predicate.
	DCDescription = NamespaceDC + "description"

	// DCTermsTitle is the Dublin Core terms title predicate.
	DCTermsTitle = NamespaceDCTerms + "title"

	// DCTermsDescription is the Dublin Core terms description predicate.
	DCTermsDescription = NamespaceDCTerms + "description"
)

// classTypes are the recognized class-declaring type objects.
var classTypes = map[string]bool{
	OWLClass:  true,
	RDFSClass: true,
}

// propertyTypes are the recognized property-declaring type objects.
var propertyTypes = map[string]bool{
	RDFProperty:           true,
	OWLObjectProperty:     true,
	OWLDatatypeProperty:   true,
	OWLAnnotationProperty: true,
	OWLOntologyProperty:   true,
}

// dependencyPredicates are the alignment predicates that imply a
// cross-namespace dependency when subject and object namespaces differ.
var dependencyPredicates = map[string]bool{
	RDFSSubClassOf:        true,
	RDFSSubPropertyOf:     true,
	OWLEquivalentClass:    true,
	OWLEquivalentProperty: true,
	OWLSameAs:             true,
	OWLInverseOf:          true,
	RDFSSeeAlso:           true,
}

// LabelPreference is the ordered list of predicates consulted for a label.
var LabelPreference = []string{RDFSLabel, DCTermsTitle, DCTitle}

// DescriptionPreference is the ordered list of predicates consulted for a
// description.
var DescriptionPreference = []string{DCTermsDescription, RDFSComment, DCDescription}

// IsClassType reports whether the IRI declares its subject to be a class.
func IsClassType(iri string) bool {
	return classTypes[iri]
}

// IsPropertyType reports whether the IRI declares its subject to be a property.
func IsPropertyType(iri string) bool {
	return propertyTypes[iri]
}

// IsDependencyPredicate reports whether the IRI is an alignment predicate.
func IsDependencyPredicate(iri string) bool {
	return dependencyPredicates[iri]
}
