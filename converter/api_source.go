package converter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	zrntcommon "github.com/protolambda/zrnt/eth2/beacon/common"
	"github.com/protolambda/ztyp/tree"

	cfgtypes "github.com/zklight/sc-witness/converter/types"
	"github.com/zklight/sc-witness/types"
)

// domainSyncCommittee is DOMAIN_SYNC_COMMITTEE from the consensus specs.
var domainSyncCommittee = zrntcommon.BLSDomainType{0x07, 0x00, 0x00, 0x00}

// APISource implements Source by deriving a step-data snapshot from beacon
// node light client updates
// GET /eth/v1/beacon/light_client/updates?start_period=&count=
type APISource struct {
	BaseURL string
	Period  uint64
	Client  *http.Client

	forkVersion           zrntcommon.Version
	genesisValidatorsRoot zrntcommon.Root
}

// NewAPISource creates a new APISource from the converter configuration
func NewAPISource(config *cfgtypes.Config) (*APISource, error) {
	src := &APISource{
		BaseURL: config.RPCEndpoint,
		Period:  config.Period,
		Client:  &http.Client{},
	}

	fv, err := types.HexToBytes(config.ForkVersion)
	if err != nil || len(fv) != 4 {
		return nil, fmt.Errorf("invalid fork version %q: %w", config.ForkVersion, ErrMalformedInput)
	}
	copy(src.forkVersion[:], fv)

	gvr, err := types.HexToBytes(config.GenesisValidatorsRoot)
	if err != nil || len(gvr) != 32 {
		return nil, fmt.Errorf("invalid genesis validators root %q: %w", config.GenesisValidatorsRoot, ErrMalformedInput)
	}
	copy(src.genesisValidatorsRoot[:], gvr)

	return src, nil
}

// StepData fetches the updates for periods (Period-1, Period) and derives
// the snapshot: the earlier update's next_sync_committee is the committee
// that signs during Period, the later update carries the sync aggregate and
// attested header the signing root is computed from.
func (a *APISource) StepData() (*types.StepData, error) {
	if a.Period == 0 {
		return nil, fmt.Errorf("period must be >= 1 to resolve the signing committee")
	}

	updates, err := a.fetchUpdates(a.Period-1, 2)
	if err != nil {
		return nil, err
	}
	if len(updates) < 2 {
		return nil, fmt.Errorf("expected 2 light client updates, got %d", len(updates))
	}

	committee := updates[0].Data.NextSyncCommittee
	update := updates[1]

	pubkeys := make([]string, len(committee.Pubkeys))
	for i, pk := range committee.Pubkeys {
		pubkeys[i] = "0x" + types.BytesToHex(pk[:])
	}

	bits := types.ParseSyncCommitteeBits(update.Data.SyncAggregate.SyncCommitteeBits)
	flags := types.BitsToFlags(bits)
	participation := 0
	for _, f := range flags {
		participation += f
	}

	// signing_root = hash_tree_root(SigningData(block_root, domain))
	blockRoot := update.Data.AttestedHeader.Beacon.HashTreeRoot(tree.GetHashFn())
	domain := zrntcommon.ComputeDomain(domainSyncCommittee, a.forkVersion, a.genesisValidatorsRoot)
	signingRoot := zrntcommon.ComputeSigningRoot(blockRoot, domain)

	sig := update.Data.SyncAggregate.SyncCommitteeSignature

	return &types.StepData{
		Pubkeys:       pubkeys,
		Pubkeybits:    flags,
		Signature:     "0x" + types.BytesToHex(sig[:]),
		SigningRoot:   "0x" + types.BytesToHex(signingRoot[:]),
		Participation: json.Number(strconv.Itoa(participation)),
		// The poseidon commitment is produced by the circuit tooling, not
		// the beacon node; it stays empty for API-derived snapshots.
		SyncCommitteePoseidon: "",
	}, nil
}

// fetchUpdates retrieves light client updates via the Beacon API
func (a *APISource) fetchUpdates(startPeriod uint64, count int) ([]types.LightClientUpdate, error) {
	// Build URL with query parameters
	endpoint, err := url.Parse(a.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	endpoint.Path = "/eth/v1/beacon/light_client/updates"
	query := endpoint.Query()
	query.Set("start_period", strconv.FormatUint(startPeriod, 10))
	query.Set("count", strconv.Itoa(count))
	endpoint.RawQuery = query.Encode()

	// Send HTTP GET request
	resp, err := a.Client.Get(endpoint.String())
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	// Parse API response
	var updates []types.LightClientUpdate
	if err := json.Unmarshal(body, &updates); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no light client updates found")
	}

	return updates, nil
}
