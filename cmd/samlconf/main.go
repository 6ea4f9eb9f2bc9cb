// Command samlconf runs the conformance verifiers against a captured SAML
// response and reports every clause it violates.
//
// Usage:
//
//	samlconf verify --response response.xml --metadata idp-metadata.xml \
//	    --binding redirect --query 'SAMLResponse=...&RelayState=...' \
//	    --expect expected.yaml
//	samlconf clauses
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	samlconformance "github.com/blen-desta/saml-conformance"
	"github.com/blen-desta/saml-conformance/internal/adapters/driven/metadata"
	"github.com/blen-desta/saml-conformance/internal/adapters/driven/metrics"
	"github.com/blen-desta/saml-conformance/internal/adapters/driven/signature"
	"github.com/blen-desta/saml-conformance/internal/core/domain"
	"github.com/blen-desta/saml-conformance/internal/core/ports"
	"github.com/blen-desta/saml-conformance/internal/core/verify"
)

var (
	flagResponse   string
	flagMetadata   string
	flagEntityID   string
	flagCert       string
	flagBinding    string
	flagQuery      string
	flagExpect     string
	flagRelayState bool
	flagAll        bool
	flagVerbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "samlconf",
		Short:         "SAML response conformance verifier",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a response against the core, profile and binding rules",
		RunE:  runVerify,
	}
	verifyCmd.Flags().StringVar(&flagResponse, "response", "", "path to the response XML document (required)")
	verifyCmd.Flags().StringVar(&flagMetadata, "metadata", "", "path to the IdP EntityDescriptor metadata")
	verifyCmd.Flags().StringVar(&flagEntityID, "entity-id", "", "IdP entity identifier (alternative to --metadata)")
	verifyCmd.Flags().StringVar(&flagCert, "cert", "", "path to the IdP signing certificate PEM (with --entity-id)")
	verifyCmd.Flags().StringVar(&flagBinding, "binding", "none", "binding rules to apply: redirect, post or none")
	verifyCmd.Flags().StringVar(&flagQuery, "query", "", "raw query or form body carrying SAMLResponse/RelayState/Signature/SigAlg")
	verifyCmd.Flags().StringVar(&flagExpect, "expect", "", "YAML file with expected relay_state/in_response_to/recipient/audience")
	verifyCmd.Flags().BoolVar(&flagRelayState, "relay-state-expected", false, "a RelayState value was sent with the request")
	verifyCmd.Flags().BoolVar(&flagAll, "all", false, "report every violation instead of stopping at the first")
	_ = verifyCmd.MarkFlagRequired("response")

	clausesCmd := &cobra.Command{
		Use:   "clauses",
		Short: "List every clause identifier the engine can report",
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range samlconformance.Clauses() {
				text, _ := samlconformance.Describe(id)
				fmt.Printf("%-28s %s\n", id, text)
			}
		},
	}

	root.AddCommand(verifyCmd, clausesCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(2)
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if flagVerbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck
	}

	source, err := metadataSource(logger)
	if err != nil {
		return err
	}
	idp, err := source.Load(context.Background())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(flagResponse)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if doc.Root() == nil {
		return fmt.Errorf("response document is empty")
	}

	expected, err := loadExpected(flagExpect)
	if err != nil {
		return err
	}

	session := &domain.Session{
		Response:           doc.Root(),
		IdP:                idp,
		Params:             parseRawQuery(flagQuery),
		RelayStateExpected: flagRelayState,
		Expected:           expected,
	}

	recorder := metrics.NewNoopMetricsRecorder()
	opts := []verify.Option{verify.WithLogger(logger), verify.WithMetrics(recorder)}

	verifiers := []*verify.Verifier{
		verify.Core(opts...),
		verify.Profile(opts...),
	}
	switch flagBinding {
	case "redirect":
		verifiers = append(verifiers, verify.Redirect(
			signature.NewQuerySignatureVerifierWithLogger(logger), opts...))
	case "post":
		var sig ports.ResponseSignatureVerifier = signature.NewNoopResponseVerifier()
		if idp.Certificate != nil {
			sig = signature.NewXMLDsigVerifierWithLogger(idp.Certificate, logger)
		}
		verifiers = append(verifiers, verify.Post(sig, opts...))
	case "none", "":
	default:
		return fmt.Errorf("unknown binding %q (want redirect, post or none)", flagBinding)
	}

	var violations domain.Violations
	for _, v := range verifiers {
		if flagAll {
			violations = append(violations, v.RunAll(session)...)
			continue
		}
		if err := v.Run(session); err != nil {
			violations = append(violations, err.(*domain.Violation))
			break
		}
	}

	if len(violations) == 0 {
		fmt.Println(color.GreenString("PASS"))
		return nil
	}
	for _, v := range violations {
		fmt.Printf("%s %s  %s\n", color.RedString("FAIL"), color.YellowString(v.Clause), v.Message)
		if text, ok := samlconformance.Describe(v.Clause); ok {
			fmt.Printf("     %s\n", text)
		}
	}
	os.Exit(1)
	return nil
}

func metadataSource(logger *zap.Logger) (ports.MetadataSource, error) {
	if flagMetadata != "" {
		return metadata.NewFileSource(flagMetadata, logger), nil
	}
	if flagEntityID == "" {
		return nil, fmt.Errorf("either --metadata or --entity-id is required")
	}
	idp := &domain.IdPMetadata{EntityID: flagEntityID}
	if flagCert != "" {
		cert, err := signature.LoadSigningCertificate(flagCert)
		if err != nil {
			return nil, err
		}
		idp.Certificate = cert
	}
	return metadata.NewInMemorySource(idp), nil
}

func loadExpected(path string) (domain.Expected, error) {
	var expected domain.Expected
	if path == "" {
		return expected, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return expected, fmt.Errorf("read expectations: %w", err)
	}
	if err := yaml.Unmarshal(data, &expected); err != nil {
		return expected, fmt.Errorf("parse expectations: %w", err)
	}
	return expected, nil
}

// parseRawQuery splits a query string into raw name/value pairs without
// decoding the values. Binding rules operate on the wire form; decoding is
// part of what they verify.
func parseRawQuery(query string) map[string]string {
	params := make(map[string]string)
	if query == "" {
		return params
	}
	for _, pair := range strings.Split(query, "&") {
		name, value, _ := strings.Cut(pair, "=")
		if name != "" {
			params[name] = value
		}
	}
	return params
}
