package contract

// GetGlobalStats derives platform-wide totals from the counters and fund
// pots. Nothing here is stored as a separate aggregate, so the figures can
// never drift from the underlying records. TotalCommissions is the unswept
// commission pool and drops back to zero after WithdrawCommissions.
func (l *Ledger) GetGlobalStats() (*GlobalStats, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	return &GlobalStats{
		TotalAssociations: getCount(l.state, AssociationsCount),
		TotalCampaigns:    getCount(l.state, CampaignsCount),
		TotalDonations:    getCount(l.state, DonationsCount),
		TotalRaised:       getFundPot(l.state, TotalRaisedKey),
		TotalCommissions:  getFundPot(l.state, CommissionPoolKey),
		Treasury:          getFundPot(l.state, TreasuryKey),
	}, nil
}
