package cmd

import (
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/generate/bibtex"
	"github.com/oabooks/exportcore/generate/crossrefdeposit"
	"github.com/oabooks/exportcore/generate/csvexport"
	"github.com/oabooks/exportcore/generate/kbart"
	"github.com/oabooks/exportcore/generate/onix21"
	"github.com/oabooks/exportcore/generate/onix3"
)

// buildGeneratorRegistry wires one Generator per specification id the
// registry catalogue names, using the sender identity from Config.
func buildGeneratorRegistry(senderName, senderEmail string) *generate.Registry {
	gens := generate.NewRegistry()

	gens.Register("onix_3.0::project_muse", onix3.ProjectMUSE(senderName, senderEmail))
	gens.Register("onix_3.0::oapen", onix3.OAPEN(senderName, senderEmail))
	gens.Register("onix_3.0::jstor", onix3.JSTOR(senderName, senderEmail))
	gens.Register("onix_3.0::google_books", onix3.GoogleBooks(senderName, senderEmail))
	gens.Register("onix_3.0::overdrive", onix3.OverDrive(senderName, senderEmail))

	gens.Register("onix_2.1::ebsco_host", onix21.EBSCOHost(senderName, senderEmail))
	gens.Register("onix_2.1::proquest_ebrary", onix21.ProQuestEbrary(senderName, senderEmail))

	gens.Register("bibtex::thoth", bibtex.Thoth())
	gens.Register("bibtex::crossref", bibtex.CrossRef())

	gens.Register("kbart::oclc", kbart.New())

	gens.Register("crossref::doi_deposit", crossrefdeposit.New(senderName, senderEmail, senderName, nil))

	gens.Register("csv::thoth", csvexport.New())

	return gens
}
