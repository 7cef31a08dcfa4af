package types

import (
	zrntaltair "github.com/protolambda/zrnt/eth2/beacon/altair"
	zrntcommon "github.com/protolambda/zrnt/eth2/beacon/common"
)

// LightClientUpdate is the beacon API light client update document
// (GET /eth/v1/beacon/light_client/updates). Only the fields the converter
// derives step data from are declared; the rest of the response is ignored.
type LightClientUpdate struct {
	Data struct {
		AttestedHeader struct {
			Beacon zrntcommon.BeaconBlockHeader `json:"beacon"`
		} `json:"attested_header"`
		NextSyncCommittee zrntcommon.SyncCommittee `json:"next_sync_committee"`
		SyncAggregate     zrntaltair.SyncAggregate `json:"sync_aggregate"`
		SignatureSlot     string                   `json:"signature_slot"`
	} `json:"data"`
	Version string `json:"version"`
}
