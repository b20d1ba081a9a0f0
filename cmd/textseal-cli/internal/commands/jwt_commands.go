package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textseal/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// JWTCommandHandler encapsulates logic for issuing and verifying JSON Web Tokens via CLI.
type JWTCommandHandler struct {
	commandBase
	now func() time.Time
}

// NewJWTCommandHandler returns a JWTCommandHandler using the wall clock
func NewJWTCommandHandler() *JWTCommandHandler {
	return &JWTCommandHandler{now: time.Now}
}

// parseLifetime parses a token lifetime such as 30m, 12h or 1d.
func parseLifetime(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid lifetime %q: expected a number followed by m, h or d", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid lifetime %q: expected a positive number followed by m, h or d", s)
	}

	switch s[len(s)-1] {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid lifetime unit in %q: expected m, h or d", s)
	}
}

func (commandHandler *JWTCommandHandler) tokenProcessor(cmd *cobra.Command) (textcrypto.TokenProcessor, error) {
	keyPath, _ := cmd.Flags().GetString("key")
	algorithm, _ := cmd.Flags().GetString("alg")

	key, err := utils.GetContent(keyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewJWTProcessor(strings.ToUpper(algorithm), key, commandHandler.logger)
}

// EncodeCmd prints a signed token carrying the aud, sub and exp claims
func (commandHandler *JWTCommandHandler) EncodeCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	audience, _ := cmd.Flags().GetString("aud")
	subject, _ := cmd.Flags().GetString("sub")
	exp, _ := cmd.Flags().GetString("exp")

	lifetime, err := parseLifetime(exp)
	if err != nil {
		return err
	}

	processor, err := commandHandler.tokenProcessor(cmd)
	if err != nil {
		return err
	}

	token, err := processor.Encode(textcrypto.TokenClaims{
		Audience:  audience,
		Subject:   subject,
		ExpiresAt: commandHandler.now().Add(lifetime),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

// VerifyCmd prints true for a valid token; any invalid token is an error
func (commandHandler *JWTCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	token, _ := cmd.Flags().GetString("token")
	audience, _ := cmd.Flags().GetString("aud")
	subject, _ := cmd.Flags().GetString("sub")

	processor, err := commandHandler.tokenProcessor(cmd)
	if err != nil {
		return err
	}

	claims, err := processor.Verify(strings.TrimSpace(token), audience, subject)
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Token for ", claims.Subject, " expires ", claims.ExpiresAt.UTC().Format(time.RFC3339))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(true))
	return err
}

// InitJWTCommands registers the jwt command group
func InitJWTCommands(rootCmd *cobra.Command) error {
	return initJWTCommands(rootCmd, NewJWTCommandHandler())
}

func initJWTCommands(rootCmd *cobra.Command, handler *JWTCommandHandler) error {
	jwtCmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issue and verify HMAC-signed JSON Web Tokens",
	}

	keyUsage := fmt.Sprintf("Path to an HMAC secret of at least %d bytes, e.g. a generated blake3 key", textcrypto.MinTokenKeySize)
	algUsage := "Signing algorithm: HS256, HS384 or HS512"

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JWT token",
		RunE:  handler.EncodeCmd,
	}
	encodeCmd.Flags().String("aud", "", "Audience claim")
	encodeCmd.Flags().String("sub", "", "Subject claim")
	encodeCmd.Flags().String("exp", "1d", "Lifetime of the token: <n>m, <n>h or <n>d")
	encodeCmd.Flags().String("alg", cryptography.DefaultTokenAlgorithm, algUsage)
	encodeCmd.Flags().StringP("key", "k", "", keyUsage)
	for _, name := range []string{"aud", "sub", "key"} {
		if err := encodeCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag required: %w", name, err)
		}
	}
	jwtCmd.AddCommand(encodeCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a JWT token",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("token", "t", "", "Token to verify")
	verifyCmd.Flags().String("aud", "", "Expected audience")
	verifyCmd.Flags().String("sub", "", "Expected subject")
	verifyCmd.Flags().String("alg", cryptography.DefaultTokenAlgorithm, algUsage)
	verifyCmd.Flags().StringP("key", "k", "", keyUsage)
	for _, name := range []string{"token", "aud", "sub", "key"} {
		if err := verifyCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag required: %w", name, err)
		}
	}
	jwtCmd.AddCommand(verifyCmd)

	rootCmd.AddCommand(jwtCmd)
	return nil
}
